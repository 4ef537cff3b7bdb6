package mapping

import (
	"strings"

	"almanac/internal/interval"
)

// RuleSet is one stage of the pipeline: an ordered list of mappings with
// identity fallback.
type RuleSet struct {
	// Title is the section title without its trailing colon,
	// e.g. "seed-to-soil map".
	Title    string
	Mappings []Mapping
}

// NewRuleSet creates a rule set, copying mappings.
func NewRuleSet(title string, mappings ...Mapping) RuleSet {
	return RuleSet{
		Title:    title,
		Mappings: append([]Mapping(nil), mappings...),
	}
}

// Resolve returns the translation of value by the first mapping that covers
// it, or value itself when none does.
func (rs RuleSet) Resolve(value uint64) uint64 {
	for _, m := range rs.Mappings {
		if v, ok := m.Apply(value); ok {
			return v
		}
	}

	return value
}

// ResolveRanges translates every value of ranges through the rule set and
// returns the covered output values as ranges. The result may hold more
// ranges than the input; it is not sorted or merged.
func (rs RuleSet) ResolveRanges(ranges []interval.Range) []interval.Range {
	pending := make([]interval.Range, 0, len(ranges))
	for _, r := range ranges {
		if !r.Empty() {
			pending = append(pending, r)
		}
	}

	var out []interval.Range

	for _, m := range rs.Mappings {
		if len(pending) == 0 {
			break
		}

		var rest []interval.Range

		for _, r := range pending {
			for _, p := range m.ApplyRange(r) {
				if p.Mapped {
					out = append(out, p.Range)
				} else {
					rest = append(rest, p.Range)
				}
			}
		}

		pending = rest
	}

	return append(out, pending...)
}

// Domains splits a title of the form "<from>-to-<to> map" into its source and
// destination domain names.
func (rs RuleSet) Domains() (from, to string, ok bool) {
	name := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rs.Title), ":"))
	name, _, _ = strings.Cut(name, " ")

	from, to, ok = strings.Cut(name, "-to-")
	if !ok || from == "" || to == "" {
		return "", "", false
	}

	return from, to, true
}
