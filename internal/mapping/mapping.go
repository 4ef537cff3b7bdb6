package mapping

import (
	"fmt"

	"almanac/internal/interval"
)

// Mapping is a single piecewise translation rule.
type Mapping struct {
	Destination uint64
	Source      uint64
	Length      uint64
}

// Piece is one part of a range split against a Mapping.
type Piece struct {
	Range interval.Range
	// Mapped reports whether Range has already been translated into the
	// destination domain.
	Mapped bool
}

// SourceRange returns [Source, Source+Length).
func (m Mapping) SourceRange() interval.Range {
	return interval.New(m.Source, m.Length)
}

// DestinationRange returns [Destination, Destination+Length).
func (m Mapping) DestinationRange() interval.Range {
	return interval.New(m.Destination, m.Length)
}

// Apply translates value if it lies in the source range.
func (m Mapping) Apply(value uint64) (uint64, bool) {
	if !m.SourceRange().Contains(value) {
		return 0, false
	}

	return value - m.Source + m.Destination, true
}

// ApplyRange splits r against the source range into at most three non-empty
// pieces in ascending source order: the part before the source range
// (unmapped), the part inside it (mapped) and the part after it (unmapped).
// An empty r yields no pieces.
func (m Mapping) ApplyRange(r interval.Range) []Piece {
	if r.Empty() {
		return nil
	}

	src := m.SourceRange()
	if !r.Overlaps(src) {
		return []Piece{{Range: r}}
	}

	pieces := make([]Piece, 0, 3)

	if r.Start < src.Start {
		pieces = append(pieces, Piece{Range: interval.Range{Start: r.Start, End: src.Start}})
	}

	inside := r.Intersect(src)
	pieces = append(pieces, Piece{
		Range:  inside.Shift(m.Source, m.Destination),
		Mapped: true,
	})

	if r.End > src.End {
		pieces = append(pieces, Piece{Range: interval.Range{Start: src.End, End: r.End}})
	}

	return pieces
}

// String renders the mapping in its input line form.
func (m Mapping) String() string {
	return fmt.Sprintf("%d %d %d", m.Destination, m.Source, m.Length)
}
