package indicator

import (
	"github.com/rxtech-lab/argo-chart/internal/types"
	"github.com/rxtech-lab/argo-chart/pkg/errors"
)

// accelerationFactor is the adaptive SAR step. It grows while a trend persists and is
// reset on every reversal.
type accelerationFactor struct {
	initial float64
	value   float64
	max     float64
}

func newAccelerationFactor(initial, maximum float64) *accelerationFactor {
	return &accelerationFactor{
		initial: initial,
		value:   initial,
		max:     maximum,
	}
}

func (af *accelerationFactor) reset() {
	af.value = af.initial
}

func (af *accelerationFactor) increase(delta float64) {
	af.value = min(af.value+delta, af.max)
}

// SAR implements the parabolic stop and reverse.
type SAR struct {
	period int
	minAF  float64
	maxAF  float64
}

// NewSAR creates a new SAR indicator with default configuration.
func NewSAR() *SAR {
	return &SAR{
		period: 4,
		minAF:  0.02,
		maxAF:  0.2,
	}
}

// Name returns the name of the indicator.
func (s *SAR) Name() types.IndicatorType {
	return types.IndicatorTypeSAR
}

// Config expects parameters: period (int), minAF (float64), maxAF (float64).
// Either no parameter, the period alone, or all three may be given.
func (s *SAR) Config(params ...any) error {
	if len(params) == 2 || len(params) > 3 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 0, 1 or 3 parameters: period (int), minAF (float64), maxAF (float64)")
	}

	period, minAF, maxAF := 4, 0.02, 0.2

	var err error

	if len(params) >= 1 {
		period, err = periodParam(params[0], "period")
		if err != nil {
			return err
		}
	}

	if len(params) == 3 {
		minAF, err = floatParam(params[1], "minAF")
		if err != nil {
			return err
		}

		maxAF, err = floatParam(params[2], "maxAF")
		if err != nil {
			return err
		}

		if minAF > maxAF {
			return errors.Newf(errors.ErrCodeInvalidMultiplier, "minAF must not exceed maxAF, got %f and %f", minAF, maxAF)
		}
	}

	s.period = period
	s.minAF = minAF
	s.maxAF = maxAF

	return nil
}

// Process emits an initial record built from quotes[0:period], then one record per quote
// starting at index period, so len(quotes)-period+1 records in total.
func (s *SAR) Process(quotes []types.Quote) []types.SARValue {
	if s.period <= 0 || len(quotes) <= s.period {
		return []types.SARValue{}
	}

	af := newAccelerationFactor(s.minAF, s.maxAF)
	isUp := quotes[s.period].Close >= quotes[s.period-1].Close
	sar, ep := s.trendStart(quotes[:s.period], isUp)

	result := make([]types.SARValue, 0, len(quotes)-s.period+1)
	result = append(result, types.SARValue{SAR: sar, IsReversal: true, IsUp: isUp})

	for n := s.period; n < len(quotes); n++ {
		sar += af.value * (ep - sar)

		window := quotes[n-s.period+1 : n+1]
		isReversal := (isUp && quotes[n].Close < sar) || (!isUp && quotes[n].Close > sar)

		if isReversal {
			isUp = !isUp
			sar, ep = s.trendStart(window, isUp)
			af.reset()
		} else {
			af.increase(s.minAF)
			if isUp {
				ep = highestHigh(window)
			} else {
				ep = lowestLow(window)
			}
		}

		result = append(result, types.SARValue{SAR: sar, IsReversal: isReversal, IsUp: isUp})
	}

	return result
}

// trendStart returns the stop and extreme point a new trend starts from.
func (s *SAR) trendStart(window []types.Quote, isUp bool) (sar, ep float64) {
	if isUp {
		return lowestLow(window), highestHigh(window)
	}

	return highestHigh(window), lowestLow(window)
}
