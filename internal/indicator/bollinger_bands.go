package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-chart/internal/types"
)

// BollingerBands implements Bollinger bands around the simple moving average.
type BollingerBands struct {
	period int     // Number of periods for moving average
	stdDev float64 // Number of standard deviations
}

// NewBollingerBands creates a new Bollinger Bands indicator with default configuration.
func NewBollingerBands() *BollingerBands {
	return &BollingerBands{
		period: 20,
		stdDev: 2.0,
	}
}

// Name returns the name of the indicator.
func (bb *BollingerBands) Name() types.IndicatorType {
	return types.IndicatorTypeBollingerBands
}

// Config configures the Bollinger Bands indicator. Expected parameters: period (int), stdDev (float64, optional, default 2).
func (bb *BollingerBands) Config(params ...any) error {
	if err := checkParamCount(params, 1, 2, "Config expects 1 or 2 parameters: period (int), stdDev (float64)"); err != nil {
		return err
	}

	period, err := periodParam(params[0], "period")
	if err != nil {
		return err
	}

	stdDev := 2.0
	if len(params) == 2 {
		stdDev, err = floatParam(params[1], "stdDev")
		if err != nil {
			return err
		}
	}

	bb.period = period
	bb.stdDev = stdDev

	return nil
}

// Process uses the population standard deviation of the trailing period closes.
func (bb *BollingerBands) Process(quotes []types.Quote) []types.BOLLValue {
	closes := types.Closes(quotes)
	middles := movingAverage(closes, bb.period)
	result := make([]types.BOLLValue, 0, len(middles))

	for i, middle := range middles {
		window := closes[i : i+bb.period]

		variance := 0.0
		for _, c := range window {
			variance += (c - middle) * (c - middle)
		}

		std := math.Sqrt(variance / float64(bb.period))
		result = append(result, types.BOLLValue{
			Lower:  middle - bb.stdDev*std,
			Middle: middle,
			Upper:  middle + bb.stdDev*std,
		})
	}

	return result
}
