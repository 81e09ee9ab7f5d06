package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-chart/internal/cache"
	"github.com/rxtech-lab/argo-chart/internal/series"
	"github.com/rxtech-lab/argo-chart/internal/types"
)

// SeriesKey addresses the offset-aligned output of an indicator with element type T.
type SeriesKey[T any] = cache.Key[*series.Offset[T]]

// DefaultKey is the type-identity key of algorithm A: the one default instance of that kind.
func DefaultKey[T any, A Algorithm[T]]() SeriesKey[T] {
	return cache.KeyOf[*series.Offset[T], A]()
}

// NamedKey is an explicit key, used when several instances of one kind coexist.
func NamedKey[T any](id string) SeriesKey[T] {
	return cache.NewKey[*series.Offset[T]](id)
}

// Commit writes a computed result into the registry.
type Commit func(values *cache.Values)

// QuoteProcessor is the type-erased processor the chart keeps in its pipeline.
type QuoteProcessor interface {
	// ID returns the registry identity the processor writes to.
	ID() any
	Name() types.IndicatorType
	// Compute runs the algorithm without touching the registry. Safe to call concurrently.
	Compute(quotes []types.Quote) Commit
	// Process computes and stores the result, overwriting any prior value.
	Process(quotes []types.Quote, values *cache.Values)
	// Clear removes the processor's entry.
	Clear(values *cache.Values)
	// ExtremePoint spans the stored series over r. None when the processor has no
	// projection or nothing was computed for r.
	ExtremePoint(values *cache.Values, r types.Range) optional.Option[types.ExtremePoint]
}

// Processor binds an algorithm to the key its output is stored under.
type Processor[T any] struct {
	algorithm  Algorithm[T]
	key        SeriesKey[T]
	projection series.Projection[T]
}

// NewProcessor creates a processor. A nil projection excludes it from extreme point resolution.
func NewProcessor[T any](algorithm Algorithm[T], key SeriesKey[T], projection series.Projection[T]) *Processor[T] {
	return &Processor[T]{
		algorithm:  algorithm,
		key:        key,
		projection: projection,
	}
}

func (p *Processor[T]) ID() any {
	return p.key.ID()
}

func (p *Processor[T]) Key() SeriesKey[T] {
	return p.key
}

func (p *Processor[T]) Name() types.IndicatorType {
	return p.algorithm.Name()
}

func (p *Processor[T]) Compute(quotes []types.Quote) Commit {
	computed := series.RightAligned(p.algorithm.Process(quotes), len(quotes))

	return func(values *cache.Values) {
		cache.Set(values, p.key, computed)
	}
}

func (p *Processor[T]) Process(quotes []types.Quote, values *cache.Values) {
	p.Compute(quotes)(values)
}

func (p *Processor[T]) Clear(values *cache.Values) {
	cache.Delete(values, p.key)
}

// Series returns the stored output.
func (p *Processor[T]) Series(values *cache.Values) optional.Option[*series.Offset[T]] {
	return cache.Get(values, p.key)
}

func (p *Processor[T]) ExtremePoint(values *cache.Values, r types.Range) optional.Option[types.ExtremePoint] {
	if p.projection == nil {
		return optional.None[types.ExtremePoint]()
	}

	stored := p.Series(values)
	if stored.IsNone() {
		return optional.None[types.ExtremePoint]()
	}

	return stored.Unwrap().ExtremePoint(r, p.projection)
}
