package types

import "fmt"

// Range is a half-open index range [Start, End) in quote-index space.
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// NewRange creates the range [start, end).
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// Len returns the number of indices in the range. Inverted ranges have length zero.
func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}

	return r.End - r.Start
}

// IsEmpty reports whether the range contains no index.
func (r Range) IsEmpty() bool {
	return r.Len() == 0
}

// Contains reports whether index lies inside the range.
func (r Range) Contains(index int) bool {
	return index >= r.Start && index < r.End
}

// Clamp restricts the range to [lower, upper). The result is empty (Start == End) when
// the two ranges do not overlap.
func (r Range) Clamp(lower, upper int) Range {
	start := max(r.Start, lower)
	end := min(r.End, upper)

	if end < start {
		end = start
	}

	return Range{Start: start, End: end}
}

func (r Range) String() string {
	return fmt.Sprintf("%d..<%d", r.Start, r.End)
}
