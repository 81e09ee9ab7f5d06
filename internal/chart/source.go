package chart

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-chart/internal/cache"
	"github.com/rxtech-lab/argo-chart/internal/types"
)

// ExtremeSource contributes a vertical span for a visible range. Every
// indicator.QuoteProcessor is an ExtremeSource.
type ExtremeSource interface {
	ExtremePoint(values *cache.Values, r types.Range) optional.Option[types.ExtremePoint]
}

// PriceSource spans quote lows and highs. Candlestick and time-share charts use it.
type PriceSource struct{}

func (PriceSource) ExtremePoint(values *cache.Values, r types.Range) optional.Option[types.ExtremePoint] {
	return quoteExtreme(values, r, func(q types.Quote) (float64, float64) {
		return q.Low, q.High
	})
}

// VolumeSource spans quote volumes.
type VolumeSource struct{}

func (VolumeSource) ExtremePoint(values *cache.Values, r types.Range) optional.Option[types.ExtremePoint] {
	return quoteExtreme(values, r, func(q types.Quote) (float64, float64) {
		return q.Volume, q.Volume
	})
}

// IndicatorSource refers to an attached processor by its registry identity. The chart
// resolves it at query time; a detached id contributes nothing.
type IndicatorSource struct {
	ID any
}

// ExtremePoint is always None; the chart resolves IndicatorSource against its processors.
func (IndicatorSource) ExtremePoint(*cache.Values, types.Range) optional.Option[types.ExtremePoint] {
	return optional.None[types.ExtremePoint]()
}

func quoteExtreme(values *cache.Values, r types.Range, project func(types.Quote) (float64, float64)) optional.Option[types.ExtremePoint] {
	stored := cache.Get(values, cache.QuotesKey)
	if stored.IsNone() {
		return optional.None[types.ExtremePoint]()
	}

	quotes := stored.Unwrap()

	clamped := r.Clamp(0, len(quotes))
	if clamped.IsEmpty() {
		return optional.None[types.ExtremePoint]()
	}

	lo, hi := project(quotes[clamped.Start])
	point := types.ExtremePoint{Min: lo, Max: hi}

	for _, q := range quotes[clamped.Start+1 : clamped.End] {
		lo, hi = project(q)
		point.Min = min(point.Min, lo)
		point.Max = max(point.Max, hi)
	}

	return optional.Some(point)
}
