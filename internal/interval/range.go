// Package interval provides half-open ranges of unsigned identifiers and the
// small set algebra the pipeline needs to push whole ranges through a stage.
package interval

import (
	"cmp"
	"fmt"
	"slices"
)

// Range is the half-open interval [Start, End).
type Range struct {
	// Start is the inclusive start of the range.
	Start uint64
	// End is the exclusive end of the range.
	End uint64
}

// New returns the range [start, start+length).
// The caller guarantees that start+length does not overflow.
func New(start, length uint64) Range {
	return Range{Start: start, End: start + length}
}

// Len returns the number of values in the range.
func (r Range) Len() uint64 {
	if r.End <= r.Start {
		return 0
	}

	return r.End - r.Start
}

// Empty returns true if the range holds no values.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Contains returns true if r contains v.
func (r Range) Contains(v uint64) bool {
	return r.Start <= v && v < r.End
}

// Overlaps returns true if r and o share at least one value.
func (r Range) Overlaps(o Range) bool {
	if r.Empty() || o.Empty() {
		return false
	}

	return r.Start < o.End && o.Start < r.End
}

// Intersect returns the values present in both r and o.
// If they do not overlap the result is empty.
func (r Range) Intersect(o Range) Range {
	if r.Start < o.Start {
		r.Start = o.Start
	}

	if r.End > o.End {
		r.End = o.End
	}

	if r.End < r.Start {
		r.End = r.Start
	}

	return r
}

// Shift moves both bounds from the from origin to the to origin, i.e. every
// value v becomes v - from + to.
func (r Range) Shift(from, to uint64) Range {
	return Range{
		Start: r.Start - from + to,
		End:   r.End - from + to,
	}
}

// String returns the range in [start, end) notation.
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Merge returns the union of rs as a sorted list of disjoint, non-adjacent
// ranges. Empty ranges are dropped. The input slice is not modified.
func Merge(rs []Range) []Range {
	sorted := make([]Range, 0, len(rs))
	for _, r := range rs {
		if !r.Empty() {
			sorted = append(sorted, r)
		}
	}

	if len(sorted) < 2 {
		return sorted
	}

	slices.SortFunc(sorted, func(a, b Range) int {
		return cmp.Compare(a.Start, b.Start)
	})

	out := sorted[:1]
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if r.Start <= last.End {
			last.End = max(last.End, r.End)
			continue
		}

		out = append(out, r)
	}

	return out
}

// Total returns the number of values covered by rs, counting overlaps once.
func Total(rs []Range) uint64 {
	var n uint64
	for _, r := range Merge(rs) {
		n += r.Len()
	}

	return n
}
