package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-chart/internal/types"
)

// RS is the Wilder-smoothed ratio of average gain to average loss.
type RS struct {
	period int
}

// NewRS creates a new RS indicator with default configuration.
func NewRS() *RS {
	return &RS{
		period: 14,
	}
}

// Name returns the name of the indicator.
func (r *RS) Name() types.IndicatorType {
	return types.IndicatorTypeRS
}

// Config expects parameters: period (int).
func (r *RS) Config(params ...any) error {
	period, err := configPeriod(params)
	if err != nil {
		return err
	}

	r.period = period

	return nil
}

// Process returns len(quotes)-period values. An unchanged close counts as a zero gain.
// RS is +Inf when the average loss is zero.
func (r *RS) Process(quotes []types.Quote) []float64 {
	return relativeStrength(types.Closes(quotes), r.period)
}

// RSI represents the Relative Strength Index indicator.
type RSI struct {
	period int
}

// NewRSI creates a new RSI indicator with default configuration.
func NewRSI() *RSI {
	return &RSI{
		period: 14,
	}
}

// Name returns the name of the indicator.
func (r *RSI) Name() types.IndicatorType {
	return types.IndicatorTypeRSI
}

// Config configures the RSI indicator. Expected parameters: period (int).
func (r *RSI) Config(params ...any) error {
	period, err := configPeriod(params)
	if err != nil {
		return err
	}

	r.period = period

	return nil
}

// Process maps every RS value to 100 - 100/(1+RS). A zero average loss yields 100.
func (r *RSI) Process(quotes []types.Quote) []float64 {
	strengths := relativeStrength(types.Closes(quotes), r.period)
	result := make([]float64, len(strengths))

	for i, rs := range strengths {
		if math.IsInf(rs, 1) {
			result[i] = 100 // Perfect uptrend
			continue
		}

		result[i] = 100 - 100/(1+rs)
	}

	return result
}

func configPeriod(params []any) (int, error) {
	if err := checkParamCount(params, 1, 1, "Config expects 1 parameter: period (int)"); err != nil {
		return 0, err
	}

	return periodParam(params[0], "period")
}

func relativeStrength(closes []float64, period int) []float64 {
	if period <= 0 || len(closes) < period+1 {
		return []float64{}
	}

	p := float64(period)
	gains, losses := 0.0, 0.0

	for i := 1; i <= period; i++ {
		delta := closes[i] - closes[i-1]
		if delta >= 0 {
			gains += delta
		} else {
			losses -= delta
		}
	}

	avgGain, avgLoss := gains/p, losses/p

	result := make([]float64, 0, len(closes)-period)
	result = append(result, strengthRatio(avgGain, avgLoss))

	for i := period + 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta >= 0 {
			avgGain = (avgGain*(p-1) + delta) / p
			avgLoss = avgLoss * (p - 1) / p
		} else {
			avgGain = avgGain * (p - 1) / p
			avgLoss = (avgLoss*(p-1) - delta) / p
		}

		result = append(result, strengthRatio(avgGain, avgLoss))
	}

	return result
}

func strengthRatio(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return math.Inf(1)
	}

	return avgGain / avgLoss
}
