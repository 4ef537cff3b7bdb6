package pipeline

import (
	"errors"

	"almanac/internal/common"
	"almanac/internal/interval"
)

var (
	// ErrNoSeeds is returned when a minimum is requested over no seeds.
	ErrNoSeeds = errors.New("no seeds to resolve")
	// ErrNoRanges is returned when a minimum is requested over no non-empty
	// seed ranges.
	ErrNoRanges = errors.New("no seed ranges to resolve")
)

// MinimumOverSeeds returns the smallest final value of any seed.
func MinimumOverSeeds(seeds []uint64, p *Pipeline) (uint64, error) {
	best, ok := common.MinFunc(seeds, p.Resolve)
	if !ok {
		return 0, ErrNoSeeds
	}

	return best, nil
}

// MinimumOverRanges returns the smallest final value reachable from any value
// in ranges, without enumerating the values.
func MinimumOverRanges(ranges []interval.Range, p *Pipeline) (uint64, error) {
	resolved := p.ResolveRanges(ranges)

	best, ok := common.MinFunc(resolved, rangeStart)
	if !ok {
		return 0, ErrNoRanges
	}

	return best, nil
}

func rangeStart(r interval.Range) uint64 {
	return r.Start
}
