package pipeline

import (
	"fmt"

	"almanac/internal/diagnostic"
	"almanac/internal/interval"
	"almanac/internal/mapping"
)

// Pipeline is an ordered, immutable sequence of stages.
type Pipeline struct {
	stages []mapping.RuleSet
}

// New creates a pipeline from stages in the given order.
func New(stages ...mapping.RuleSet) *Pipeline {
	owned := make([]mapping.RuleSet, 0, len(stages))
	for _, s := range stages {
		owned = append(owned, mapping.NewRuleSet(s.Title, s.Mappings...))
	}

	return &Pipeline{stages: owned}
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Stages returns a copy of the stages in order.
func (p *Pipeline) Stages() []mapping.RuleSet {
	out := make([]mapping.RuleSet, 0, len(p.stages))
	for _, s := range p.stages {
		out = append(out, mapping.NewRuleSet(s.Title, s.Mappings...))
	}

	return out
}

// Resolve pushes value through every stage.
func (p *Pipeline) Resolve(value uint64) uint64 {
	for _, s := range p.stages {
		value = s.Resolve(value)
	}

	return value
}

// Trace returns value before the first stage followed by its value after
// each stage, so the result has Len()+1 entries.
func (p *Pipeline) Trace(value uint64) []uint64 {
	out := make([]uint64, 0, len(p.stages)+1)
	out = append(out, value)

	for _, s := range p.stages {
		value = s.Resolve(value)
		out = append(out, value)
	}

	return out
}

// ResolveRanges pushes every value of ranges through every stage and returns
// the covered output values as sorted, disjoint ranges.
func (p *Pipeline) ResolveRanges(ranges []interval.Range) []interval.Range {
	current := interval.Merge(ranges)
	for _, s := range p.stages {
		current = interval.Merge(s.ResolveRanges(current))
	}

	return current
}

// Validate reports per-stage findings and breaks in the domain chain, where
// a stage does not consume what the previous stage produced.
func (p *Pipeline) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	var prevTo, prevTitle string

	for i, s := range p.stages {
		res.Merge(*mapping.Validate(s))

		from, to, ok := s.Domains()
		if !ok {
			res.AddInfo("untyped_stage", fmt.Sprintf("stage %d title does not name its domains", i+1), s.Title, "")
			prevTo, prevTitle = "", ""

			continue
		}

		if prevTo != "" && from != prevTo {
			res.AddWarning(
				"stage_chain_break",
				fmt.Sprintf("stage consumes %q but previous stage %q produces %q", from, prevTitle, prevTo),
				s.Title,
				"",
			)
		}

		prevTo, prevTitle = to, s.Title
	}

	return res
}
