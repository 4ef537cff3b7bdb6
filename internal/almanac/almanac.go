package almanac

import (
	"fmt"
	"math"

	"almanac/internal/common"
	"almanac/internal/diagnostic"
	"almanac/internal/interval"
	"almanac/internal/mapping"
	"almanac/internal/pipeline"
)

// DefaultSeedLabel is the label written in front of the seed integers.
const DefaultSeedLabel = "seeds"

// Almanac is a parsed seed specification together with its pipeline.
// It is read-only once constructed.
type Almanac struct {
	// SeedLabel is the label token of the seed line, e.g. "seeds:".
	SeedLabel string
	// Seeds are the seed integers read as individual seeds.
	Seeds []uint64
	// SeedRanges are the seed integers read as (start, length) pairs.
	SeedRanges []interval.Range
	// Pipeline holds the stages in file order.
	Pipeline *pipeline.Pipeline
}

// New builds an almanac from raw seed integers and stages. It fails with a
// KindMalformedInteger *ParseError when a seed range or a mapping would run
// past the largest uint64.
func New(seeds []uint64, stages ...mapping.RuleSet) (*Almanac, error) {
	ranges, err := seedRanges(seeds)
	if err != nil {
		return nil, err
	}

	for _, s := range stages {
		for _, m := range s.Mappings {
			if err := checkMapping(m); err != nil {
				err.Section = s.Title
				return nil, err
			}
		}
	}

	return &Almanac{
		SeedLabel:  DefaultSeedLabel + ":",
		Seeds:      append([]uint64(nil), seeds...),
		SeedRanges: ranges,
		Pipeline:   pipeline.New(stages...),
	}, nil
}

// Location returns the final value of a single seed.
func (a *Almanac) Location(seed uint64) uint64 {
	return a.Pipeline.Resolve(seed)
}

// ClosestSeedLocation returns the smallest location of the individual seeds.
func (a *Almanac) ClosestSeedLocation() (uint64, error) {
	return pipeline.MinimumOverSeeds(a.Seeds, a.Pipeline)
}

// ClosestRangeLocation returns the smallest location reachable from any seed
// in the seed ranges.
func (a *Almanac) ClosestRangeLocation() (uint64, error) {
	return pipeline.MinimumOverRanges(a.SeedRanges, a.Pipeline)
}

// Validate reports findings about the seeds and every stage.
func (a *Almanac) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if len(a.Seeds)%2 != 0 {
		last := a.Seeds[len(a.Seeds)-1]
		res.AddInfo("unpaired_seed",
			fmt.Sprintf("seed %d has no length and is ignored when seeds are read as ranges", last), "", "")
	}

	for _, r := range a.SeedRanges {
		if r.Empty() {
			res.AddInfo("empty_seed_range", fmt.Sprintf("seed range starting at %d has zero length", r.Start), "", "")
		}
	}

	res.Merge(*a.Pipeline.Validate())

	return res
}

func seedRanges(seeds []uint64) ([]interval.Range, error) {
	pairs := common.Pairs(seeds)
	ranges := make([]interval.Range, 0, len(pairs))

	for _, pair := range pairs {
		start, length := pair[0], pair[1]
		if length > math.MaxUint64-start {
			return nil, &ParseError{
				Kind:   KindMalformedInteger,
				Token:  fmt.Sprint(length),
				Detail: fmt.Sprintf("seed range starting at %d overflows", start),
			}
		}

		ranges = append(ranges, interval.New(start, length))
	}

	return ranges, nil
}

func checkMapping(m mapping.Mapping) *ParseError {
	if m.Length > math.MaxUint64-m.Source || m.Length > math.MaxUint64-m.Destination {
		return &ParseError{
			Kind:   KindMalformedInteger,
			Token:  fmt.Sprint(m.Length),
			Detail: fmt.Sprintf("mapping %q overflows", m.String()),
		}
	}

	return nil
}
