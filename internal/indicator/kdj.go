package indicator

import (
	"github.com/rxtech-lab/argo-chart/internal/types"
)

// KDJ is the stochastic oscillator with the J line, smoothed with fixed 1/3 and 2/3 weights.
type KDJ struct {
	period int
}

// NewKDJ creates a new KDJ indicator with default configuration.
func NewKDJ() *KDJ {
	return &KDJ{
		period: 9,
	}
}

// Name returns the name of the indicator.
func (k *KDJ) Name() types.IndicatorType {
	return types.IndicatorTypeKDJ
}

// Config expects parameters: period (int, optional, default 9).
func (k *KDJ) Config(params ...any) error {
	if err := checkParamCount(params, 0, 1, "Config expects at most 1 parameter: period (int)"); err != nil {
		return err
	}

	if len(params) == 0 {
		k.period = 9
		return nil
	}

	period, err := periodParam(params[0], "period")
	if err != nil {
		return err
	}

	k.period = period

	return nil
}

// Process seeds K and D at 50. RSV is 0 when the trailing high equals the trailing low.
func (k *KDJ) Process(quotes []types.Quote) []types.KDJValue {
	if k.period <= 0 || len(quotes) < k.period {
		return []types.KDJValue{}
	}

	prevK, prevD := 50.0, 50.0
	result := make([]types.KDJValue, 0, len(quotes)-k.period+1)

	for idx := k.period - 1; idx < len(quotes); idx++ {
		window := quotes[idx-k.period+1 : idx+1]
		low, high := lowestLow(window), highestHigh(window)

		rsv := 0.0
		if high != low {
			rsv = (quotes[idx].Close - low) / (high - low) * 100
		}

		currentK := rsv/3 + prevK*2/3
		currentD := currentK/3 + prevD*2/3

		result = append(result, types.KDJValue{
			K: currentK,
			D: currentD,
			J: 3*currentK - 2*currentD,
		})

		prevK, prevD = currentK, currentD
	}

	return result
}

func lowestLow(quotes []types.Quote) float64 {
	low := quotes[0].Low
	for _, q := range quotes[1:] {
		low = min(low, q.Low)
	}

	return low
}

func highestHigh(quotes []types.Quote) float64 {
	high := quotes[0].High
	for _, q := range quotes[1:] {
		high = max(high, q.High)
	}

	return high
}
