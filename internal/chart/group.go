package chart

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-chart/internal/cache"
	"github.com/rxtech-lab/argo-chart/internal/types"
)

// Group is an ordered set of charts drawn on one vertical scale, e.g. candlesticks with
// moving averages, or MACD alone.
type Group struct {
	Name    string
	Sources []ExtremeSource
}

func NewGroup(name string, sources ...ExtremeSource) Group {
	return Group{
		Name:    name,
		Sources: sources,
	}
}

// GroupExtreme is the resolved span of one group.
type GroupExtreme struct {
	Name  string
	Point optional.Option[types.ExtremePoint]
}

// Bounds returns the span ready to use as a scale.
func (g GroupExtreme) Bounds() types.ExtremePoint {
	return types.ScaleBounds(g.Point)
}

// GroupExtremeKey addresses the last resolved extreme of the named group in the registry.
func GroupExtremeKey(name string) cache.Key[types.ExtremePoint] {
	return cache.NewKey[types.ExtremePoint](groupIdentity(name))
}

type groupIdentity string

func (g groupIdentity) String() string {
	return "group:" + string(g)
}
