// Package chart keeps a quote sequence and the indicators computed from it consistent
// across mutations, and resolves the vertical extremes a renderer scales to.
package chart

import (
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-chart/internal/cache"
	"github.com/rxtech-lab/argo-chart/internal/indicator"
	"github.com/rxtech-lab/argo-chart/internal/logger"
	"github.com/rxtech-lab/argo-chart/internal/series"
	"github.com/rxtech-lab/argo-chart/internal/types"
	"github.com/rxtech-lab/argo-chart/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Mutation names the event that triggered a recompute.
type Mutation string

const (
	MutationReload      Mutation = "reload"
	MutationAppend      Mutation = "append"
	MutationReplaceLast Mutation = "replace_last"
	MutationPrepend     Mutation = "prepend"
)

// Chart owns the quote sequence, the attached indicator processors and the registry they
// write to. Every mutation rebuilds the registry from scratch under the write lock, so
// readers never observe a partial recompute.
type Chart struct {
	mu         sync.RWMutex
	quotes     []types.Quote
	values     *cache.Values
	processors []indicator.QuoteProcessor
	groups     []Group
	parallel   bool
	logger     *logger.Logger
	metrics    *Metrics
}

type Option func(*Chart)

// WithLogger sets the logger used for recompute diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(c *Chart) {
		c.logger = l
	}
}

// WithMetrics records recompute metrics.
func WithMetrics(m *Metrics) Option {
	return func(c *Chart) {
		c.metrics = m
	}
}

// WithParallel computes independent indicators concurrently. Results are written into
// the registry serially once all of them finish.
func WithParallel(parallel bool) Option {
	return func(c *Chart) {
		c.parallel = parallel
	}
}

func NewChart(opts ...Option) *Chart {
	c := &Chart{
		quotes:     []types.Quote{},
		values:     cache.NewValues(),
		processors: []indicator.QuoteProcessor{},
		groups:     []Group{},
		logger:     logger.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	cache.Set(c.values, cache.QuotesKey, c.quotes)

	return c
}

// Reload replaces the entire quote sequence.
func (c *Chart) Reload(quotes []types.Quote) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.quotes = slices.Clone(quotes)
	c.recompute(MutationReload)
}

// Append adds one quote after the most recent one.
func (c *Chart) Append(quote types.Quote) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.quotes = append(slices.Clip(c.quotes), quote)
	c.recompute(MutationAppend)
}

// ReplaceLast replaces the most recent quote, typically a live update of the in-progress
// interval. On an empty chart it appends.
func (c *Chart) ReplaceLast(quote types.Quote) {
	c.mu.Lock()
	defer c.mu.Unlock()

	quotes := slices.Clone(c.quotes)
	if len(quotes) == 0 {
		quotes = append(quotes, quote)
	} else {
		quotes[len(quotes)-1] = quote
	}

	c.quotes = quotes
	c.recompute(MutationReplaceLast)
}

// Prepend adds a batch of earlier quotes in front of the current ones. Every logical
// index shifts by len(quotes).
func (c *Chart) Prepend(quotes []types.Quote) {
	c.mu.Lock()
	defer c.mu.Unlock()

	merged := make([]types.Quote, 0, len(quotes)+len(c.quotes))
	merged = append(merged, quotes...)
	merged = append(merged, c.quotes...)

	c.quotes = merged
	c.recompute(MutationPrepend)
}

// Attach adds a processor to the pipeline and computes it over the current quotes.
func (c *Chart) Attach(processor indicator.QuoteProcessor) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := processor.ID()
	if c.indexOf(id) >= 0 {
		return errors.Newf(errors.ErrCodeIndicatorAlreadyExists, "indicator %v is already attached", id)
	}

	c.processors = append(c.processors, processor)
	processor.Compute(c.quotes)(c.values)

	c.logger.Debug("attached indicator",
		zap.String("indicator", string(processor.Name())),
		zap.Any("key", id),
	)

	if c.metrics != nil {
		c.metrics.AttachedIndicators.Set(float64(len(c.processors)))
	}

	return nil
}

// Detach removes a processor and its registry entry.
func (c *Chart) Detach(id any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return errors.Newf(errors.ErrCodeIndicatorNotFound, "indicator %v is not attached", id)
	}

	processor := c.processors[i]
	processor.Clear(c.values)
	c.processors = slices.Delete(c.processors, i, i+1)

	c.logger.Debug("detached indicator",
		zap.String("indicator", string(processor.Name())),
		zap.Any("key", id),
	)

	if c.metrics != nil {
		c.metrics.AttachedIndicators.Set(float64(len(c.processors)))
	}

	return nil
}

// IndicatorIDs returns the registry identities of the attached processors in attach order.
func (c *Chart) IndicatorIDs() []any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]any, len(c.processors))
	for i, p := range c.processors {
		ids[i] = p.ID()
	}

	return ids
}

// Processors returns the attached processors in attach order.
func (c *Chart) Processors() []indicator.QuoteProcessor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.processors)
}

// Len returns the number of quotes.
func (c *Chart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.quotes)
}

// Quote returns the quote at a logical index.
func (c *Chart) Quote(index int) optional.Option[types.Quote] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if index < 0 || index >= len(c.quotes) {
		return optional.None[types.Quote]()
	}

	return optional.Some(c.quotes[index])
}

// Quotes returns a copy of the quote sequence.
func (c *Chart) Quotes() []types.Quote {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.quotes)
}

// Series returns the stored output for key.
func Series[T any](c *Chart, key indicator.SeriesKey[T]) optional.Option[*series.Offset[T]] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cache.Get(c.values, key)
}

// Lookup returns the indicator value at a logical quote index.
func Lookup[T any](c *Chart, key indicator.SeriesKey[T], index int) optional.Option[T] {
	stored := Series(c, key)
	if stored.IsNone() {
		return optional.None[T]()
	}

	return stored.Unwrap().Get(index)
}

// SliceForRange returns the computed values within r and the logical range they cover.
func SliceForRange[T any](c *Chart, key indicator.SeriesKey[T], r types.Range) ([]T, types.Range) {
	stored := Series(c, key)
	if stored.IsNone() {
		return nil, types.NewRange(r.Start, r.Start)
	}

	return stored.Unwrap().SliceForRange(r)
}

// ExtremePoint unions the extremes of the attached processors over r. With ids it only
// considers those processors. None when no processor contributes.
func (c *Chart) ExtremePoint(r types.Range, ids ...any) optional.Option[types.ExtremePoint] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	points := make([]optional.Option[types.ExtremePoint], 0, len(c.processors))
	for _, p := range c.processors {
		if len(ids) > 0 && !slices.Contains(ids, p.ID()) {
			continue
		}

		points = append(points, p.ExtremePoint(c.values, r))
	}

	return types.MergeExtremePoints(points...)
}

// QuoteExtremePoint spans quote lows and highs over r.
func (c *Chart) QuoteExtremePoint(r types.Range) optional.Option[types.ExtremePoint] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return PriceSource{}.ExtremePoint(c.values, r)
}

// VolumeExtremePoint spans quote volumes over r.
func (c *Chart) VolumeExtremePoint(r types.Range) optional.Option[types.ExtremePoint] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return VolumeSource{}.ExtremePoint(c.values, r)
}

// AddGroup registers a group of charts sharing one vertical scale.
func (c *Chart) AddGroup(group Group) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.groupIndex(group.Name) >= 0 {
		return errors.Newf(errors.ErrCodeGroupAlreadyExists, "group %s already exists", group.Name)
	}

	c.groups = append(c.groups, group)

	return nil
}

// GroupNames returns the group names in registration order.
func (c *Chart) GroupNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, len(c.groups))
	for i, g := range c.groups {
		names[i] = g.Name
	}

	return names
}

// GroupExtremePoint resolves the named group over r: the minimum of mins and the maximum of
// maxes across its sources.
func (c *Chart) GroupExtremePoint(name string, r types.Range) (optional.Option[types.ExtremePoint], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.groupIndex(name)
	if i < 0 {
		return optional.None[types.ExtremePoint](), errors.Newf(errors.ErrCodeGroupNotFound, "group %s not found", name)
	}

	return c.groupExtreme(c.groups[i], r), nil
}

// GroupExtremePoints resolves every group over r and stores each present result in the registry
// under GroupExtremeKey. The stored values live until the next mutation.
func (c *Chart) GroupExtremePoints(r types.Range) []GroupExtreme {
	c.mu.Lock()
	defer c.mu.Unlock()

	resolved := make([]GroupExtreme, len(c.groups))
	for i, g := range c.groups {
		point := c.groupExtreme(g, r)
		resolved[i] = GroupExtreme{Name: g.Name, Point: point}

		if point.IsSome() {
			cache.Set(c.values, GroupExtremeKey(g.Name), point.Unwrap())
		} else {
			cache.Delete(c.values, GroupExtremeKey(g.Name))
		}
	}

	return resolved
}

// ResolvedGroupExtreme returns what the last GroupExtremePoints call stored for the named group.
func (c *Chart) ResolvedGroupExtreme(name string) optional.Option[types.ExtremePoint] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cache.Get(c.values, GroupExtremeKey(name))
}

func (c *Chart) groupExtreme(group Group, r types.Range) optional.Option[types.ExtremePoint] {
	points := make([]optional.Option[types.ExtremePoint], 0, len(group.Sources))

	for _, source := range group.Sources {
		if ref, ok := source.(IndicatorSource); ok {
			i := c.indexOf(ref.ID)
			if i < 0 {
				continue
			}

			source = c.processors[i]
		}

		points = append(points, source.ExtremePoint(c.values, r))
	}

	return types.MergeExtremePoints(points...)
}

// recompute rebuilds the registry: the quotes entry plus every processor's output.
// Callers hold the write lock.
func (c *Chart) recompute(mutation Mutation) {
	start := time.Now()

	commits := c.compute(c.quotes)

	c.values.Reset()
	cache.Set(c.values, cache.QuotesKey, c.quotes)

	for _, commit := range commits {
		commit(c.values)
	}

	duration := time.Since(start)

	c.logger.Debug("recomputed indicators",
		zap.String("mutation", string(mutation)),
		zap.Int("quotes", len(c.quotes)),
		zap.Int("indicators", len(c.processors)),
		zap.Duration("duration", duration),
	)

	if c.metrics != nil {
		c.metrics.RecomputeTotal.WithLabelValues(string(mutation)).Inc()
		c.metrics.RecomputeDur.Observe(duration.Seconds())
		c.metrics.Quotes.Set(float64(len(c.quotes)))
	}
}

func (c *Chart) compute(quotes []types.Quote) []indicator.Commit {
	commits := make([]indicator.Commit, len(c.processors))

	if !c.parallel || len(c.processors) < 2 {
		for i, p := range c.processors {
			commits[i] = p.Compute(quotes)
		}

		return commits
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, p := range c.processors {
		g.Go(func() error {
			commits[i] = p.Compute(quotes)
			return nil
		})
	}

	// Compute never fails; Wait only joins the goroutines.
	_ = g.Wait()

	return commits
}

func (c *Chart) indexOf(id any) int {
	return slices.IndexFunc(c.processors, func(p indicator.QuoteProcessor) bool {
		return p.ID() == id
	})
}

func (c *Chart) groupIndex(name string) int {
	return slices.IndexFunc(c.groups, func(g Group) bool {
		return g.Name == name
	})
}
