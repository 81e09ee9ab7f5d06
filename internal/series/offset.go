// Package series addresses indicator outputs, which are shorter than the quote sequence
// they were computed from, in the quote index space.
package series

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-chart/internal/types"
)

// Offset is a read-only series whose element i lives at logical index i+offset.
type Offset[T any] struct {
	backing []T
	offset  int
}

func NewOffset[T any](backing []T, offset int) *Offset[T] {
	return &Offset[T]{
		backing: backing,
		offset:  offset,
	}
}

// RightAligned aligns backing to the most recent of quoteCount quotes.
func RightAligned[T any](backing []T, quoteCount int) *Offset[T] {
	return NewOffset(backing, quoteCount-len(backing))
}

// Offset returns the logical index of the first backing element.
func (s *Offset[T]) Offset() int {
	return s.offset
}

// Len returns the number of backing elements.
func (s *Offset[T]) Len() int {
	return len(s.backing)
}

// Bounds returns the logical range covered by the backing elements.
func (s *Offset[T]) Bounds() types.Range {
	return types.NewRange(s.offset, s.offset+len(s.backing))
}

// Get returns the element at a logical index, or None outside the backing bounds.
func (s *Offset[T]) Get(index int) optional.Option[T] {
	if s == nil {
		return optional.None[T]()
	}

	i := index - s.offset
	if i < 0 || i >= len(s.backing) {
		return optional.None[T]()
	}

	return optional.Some(s.backing[i])
}

// SliceForRange clamps r to the backing bounds and returns the backing elements
// together with the logical range they cover. The returned slice must not be modified.
func (s *Offset[T]) SliceForRange(r types.Range) ([]T, types.Range) {
	if s == nil {
		return nil, types.NewRange(r.Start, r.Start)
	}

	bounds := s.Bounds()
	clamped := r.Clamp(bounds.Start, bounds.End)
	if clamped.IsEmpty() {
		return nil, clamped
	}

	return s.backing[clamped.Start-s.offset : clamped.End-s.offset], clamped
}

// ExtremePoint returns the span of the projected elements within r. Elements projecting to
// an infinite or NaN span are skipped. None when no finite element remains.
func (s *Offset[T]) ExtremePoint(r types.Range, project Projection[T]) optional.Option[types.ExtremePoint] {
	values, _ := s.SliceForRange(r)

	result := optional.None[types.ExtremePoint]()
	for _, v := range values {
		point := project(v)
		if !point.IsFinite() {
			continue
		}

		if result.IsNone() {
			result = optional.Some(point)
			continue
		}

		result = optional.Some(result.Unwrap().Union(point))
	}

	return result
}
