package types

import "github.com/moznion/go-optional"

// BOLLValue is one Bollinger bands element.
type BOLLValue struct {
	Lower  float64 `json:"lower"`
	Middle float64 `json:"middle"`
	Upper  float64 `json:"upper"`
}

func (v BOLLValue) ExtremePoint() ExtremePoint {
	return ExtremeOf(v.Lower, v.Middle, v.Upper)
}

// KDJValue is one KDJ element. J is not bounded to [0, 100].
type KDJValue struct {
	K float64 `json:"k"`
	D float64 `json:"d"`
	J float64 `json:"j"`
}

func (v KDJValue) ExtremePoint() ExtremePoint {
	return ExtremeOf(v.K, v.D, v.J)
}

// MACDValue is one MACD element. Dea and Histogram are absent during the signal warm-up.
type MACDValue struct {
	Diff      float64                  `json:"diff"`
	Dea       optional.Option[float64] `json:"dea"`
	Histogram optional.Option[float64] `json:"histogram"`
}

// ExtremePoint spans the present fields only.
func (v MACDValue) ExtremePoint() ExtremePoint {
	values := make([]float64, 0, 2)
	if v.Dea.IsSome() {
		values = append(values, v.Dea.Unwrap())
	}

	if v.Histogram.IsSome() {
		values = append(values, v.Histogram.Unwrap())
	}

	return ExtremeOf(v.Diff, values...)
}

// SARValue is one parabolic SAR element.
type SARValue struct {
	SAR        float64 `json:"sar"`
	IsReversal bool    `json:"is_reversal"`
	IsUp       bool    `json:"is_up"`
}

func (v SARValue) ExtremePoint() ExtremePoint {
	return ExtremePoint{Min: v.SAR, Max: v.SAR}
}
