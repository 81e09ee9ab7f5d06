package indicator

import (
	"github.com/rxtech-lab/argo-chart/internal/types"
)

// EMA implements the exponential moving average of close prices.
type EMA struct {
	period int
}

// NewEMA creates a new EMA indicator with default configuration.
func NewEMA() *EMA {
	return &EMA{
		period: 20,
	}
}

// Name returns the name of the indicator.
func (e *EMA) Name() types.IndicatorType {
	return types.IndicatorTypeEMA
}

// Config expects parameters: period (int).
func (e *EMA) Config(params ...any) error {
	if err := checkParamCount(params, 1, 1, "Config expects 1 parameter: period (int)"); err != nil {
		return err
	}

	period, err := periodParam(params[0], "period")
	if err != nil {
		return err
	}

	e.period = period

	return nil
}

func (e *EMA) Process(quotes []types.Quote) []float64 {
	return exponentialMovingAverage(types.Closes(quotes), e.period)
}

// exponentialMovingAverage seeds with the simple average of the first period values,
// then applies EMA = (value - EMA_prev) * multiplier + EMA_prev
// where multiplier = 2 / (period + 1).
func exponentialMovingAverage(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return []float64{}
	}

	multiplier := 2.0 / float64(period+1)

	ema := 0.0
	for _, v := range values[:period] {
		ema += v
	}

	ema /= float64(period)

	result := make([]float64, 0, len(values)-period+1)
	result = append(result, ema)

	for _, v := range values[period:] {
		ema = (v-ema)*multiplier + ema
		result = append(result, ema)
	}

	return result
}
