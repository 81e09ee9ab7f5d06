package types

import (
	"math"

	"github.com/moznion/go-optional"
)

// ExtremePoint is the (min, max) span of values over an index range.
type ExtremePoint struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ExtremeOf returns the span of the given values.
func ExtremeOf(first float64, rest ...float64) ExtremePoint {
	point := ExtremePoint{Min: first, Max: first}
	for _, v := range rest {
		point.Min = min(point.Min, v)
		point.Max = max(point.Max, v)
	}

	return point
}

// Union returns the smallest span covering both points.
func (p ExtremePoint) Union(other ExtremePoint) ExtremePoint {
	return ExtremePoint{
		Min: min(p.Min, other.Min),
		Max: max(p.Max, other.Max),
	}
}

// IsDegenerate reports whether min equals max.
func (p ExtremePoint) IsDegenerate() bool {
	return p.Min == p.Max
}

// IsFinite reports whether both bounds are real numbers.
func (p ExtremePoint) IsFinite() bool {
	return !math.IsInf(p.Min, 0) && !math.IsNaN(p.Min) && !math.IsInf(p.Max, 0) && !math.IsNaN(p.Max)
}

// MergeExtremePoints unions every present point. The result is absent when none is present.
func MergeExtremePoints(points ...optional.Option[ExtremePoint]) optional.Option[ExtremePoint] {
	result := optional.None[ExtremePoint]()

	for _, point := range points {
		if point.IsNone() {
			continue
		}

		if result.IsNone() {
			result = point
			continue
		}

		result = optional.Some(result.Unwrap().Union(point.Unwrap()))
	}

	return result
}

// ScaleBounds turns a resolved extreme point into bounds usable as a vertical scale.
// An absent or non-finite point yields (0, 1); a degenerate point is widened to
// (min*0.5, min*1.5).
func ScaleBounds(point optional.Option[ExtremePoint]) ExtremePoint {
	if point.IsNone() || !point.Unwrap().IsFinite() {
		return ExtremePoint{Min: 0, Max: 1}
	}

	p := point.Unwrap()
	if p.IsDegenerate() {
		return ExtremePoint{Min: p.Min * 0.5, Max: p.Min * 1.5}
	}

	return p
}
