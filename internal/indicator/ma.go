package indicator

import (
	"github.com/rxtech-lab/argo-chart/internal/types"
)

// MA implements the simple moving average of close prices.
type MA struct {
	period int
}

// NewMA creates a new MA indicator with default configuration.
func NewMA() *MA {
	return &MA{
		period: 20,
	}
}

// Name returns the name of the indicator.
func (m *MA) Name() types.IndicatorType {
	return types.IndicatorTypeMA
}

// Config expects parameters: period (int).
func (m *MA) Config(params ...any) error {
	if err := checkParamCount(params, 1, 1, "Config expects 1 parameter: period (int)"); err != nil {
		return err
	}

	period, err := periodParam(params[0], "period")
	if err != nil {
		return err
	}

	m.period = period

	return nil
}

// Process returns len(quotes)-period+1 averages, the first one covering quotes[0:period].
func (m *MA) Process(quotes []types.Quote) []float64 {
	return movingAverage(types.Closes(quotes), m.period)
}

// movingAverage keeps a running sum: the value leaving the window is subtracted and the
// value entering it is added.
func movingAverage(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return []float64{}
	}

	sum := 0.0
	for _, v := range values[:period] {
		sum += v
	}

	result := make([]float64, 0, len(values)-period+1)
	result = append(result, sum/float64(period))

	for i := period; i < len(values); i++ {
		sum += values[i] - values[i-period]
		result = append(result, sum/float64(period))
	}

	return result
}
