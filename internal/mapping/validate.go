package mapping

import (
	"fmt"

	"almanac/internal/diagnostic"
)

// Validate checks the structural assumptions the resolution code makes about
// a rule set. Nothing reported here stops resolution: overlaps resolve in
// favour of the first listed mapping, empty mappings never match.
func Validate(rs RuleSet) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if len(rs.Mappings) == 0 {
		res.AddInfo("empty_stage", "stage has no mappings, every value passes through unchanged", rs.Title, "")
		return res
	}

	for i, m := range rs.Mappings {
		if m.Length == 0 {
			res.AddWarning("empty_mapping", "mapping has zero length and never applies", rs.Title, m.String())
			continue
		}

		for _, prev := range rs.Mappings[:i] {
			if !prev.SourceRange().Overlaps(m.SourceRange()) {
				continue
			}

			shadowed := prev.SourceRange().Intersect(m.SourceRange())
			res.AddWarning(
				"overlapping_mappings",
				fmt.Sprintf("source values %s are shadowed by earlier mapping %q", shadowed, prev.String()),
				rs.Title,
				m.String(),
			)
		}
	}

	return res
}
