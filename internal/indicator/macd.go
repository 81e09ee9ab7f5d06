package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-chart/internal/types"
	"github.com/rxtech-lab/argo-chart/pkg/errors"
)

// MACD represents the Moving Average Convergence Divergence indicator.
type MACD struct {
	fastPeriod   int
	slowPeriod   int
	signalPeriod int
}

// NewMACD creates a new MACD indicator with default configuration.
func NewMACD() *MACD {
	return &MACD{
		fastPeriod:   12,
		slowPeriod:   26,
		signalPeriod: 9,
	}
}

// Name returns the name of the indicator.
func (m *MACD) Name() types.IndicatorType {
	return types.IndicatorTypeMACD
}

// Config configures the MACD indicator. Expected parameters: fastPeriod (int), slowPeriod (int), signalPeriod (int).
func (m *MACD) Config(params ...any) error {
	if err := checkParamCount(params, 3, 3, "Config expects 3 parameters: fastPeriod (int), slowPeriod (int), signalPeriod (int)"); err != nil {
		return err
	}

	fastPeriod, err := periodParam(params[0], "fastPeriod")
	if err != nil {
		return err
	}

	slowPeriod, err := periodParam(params[1], "slowPeriod")
	if err != nil {
		return err
	}

	signalPeriod, err := periodParam(params[2], "signalPeriod")
	if err != nil {
		return err
	}

	if fastPeriod >= slowPeriod {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "fastPeriod must be less than slowPeriod, got %d and %d", fastPeriod, slowPeriod)
	}

	m.fastPeriod = fastPeriod
	m.slowPeriod = slowPeriod
	m.signalPeriod = signalPeriod

	return nil
}

// Process returns len(quotes)-slowPeriod+1 elements. The first signalPeriod-1 of them
// carry only the diff line.
func (m *MACD) Process(quotes []types.Quote) []types.MACDValue {
	if m.fastPeriod <= 0 || m.signalPeriod <= 0 || m.fastPeriod >= m.slowPeriod {
		return []types.MACDValue{}
	}

	closes := types.Closes(quotes)
	slow := exponentialMovingAverage(closes, m.slowPeriod)
	if len(slow) == 0 {
		return []types.MACDValue{}
	}

	// Both lines start at quote index slowPeriod-1.
	fast := exponentialMovingAverage(closes, m.fastPeriod)[m.slowPeriod-m.fastPeriod:]

	diffs := make([]float64, len(slow))
	for i := range slow {
		diffs[i] = fast[i] - slow[i]
	}

	deas := exponentialMovingAverage(diffs, m.signalPeriod)
	warmUp := min(m.signalPeriod-1, len(diffs))

	result := make([]types.MACDValue, 0, len(diffs))
	for i, diff := range diffs {
		if i < warmUp {
			result = append(result, types.MACDValue{
				Diff:      diff,
				Dea:       optional.None[float64](),
				Histogram: optional.None[float64](),
			})

			continue
		}

		dea := deas[i-warmUp]
		result = append(result, types.MACDValue{
			Diff:      diff,
			Dea:       optional.Some(dea),
			Histogram: optional.Some(diff - dea),
		})
	}

	return result
}
