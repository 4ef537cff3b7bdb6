package pipeline

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"almanac/internal/common"
	"almanac/internal/interval"
)

// Config holds configuration for the concurrent resolver.
type Config struct {
	// Workers bounds how many seed ranges are resolved at once.
	// Values below 2 resolve sequentially on the calling goroutine.
	Workers int
}

// DefaultConfig returns one worker per available CPU.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Resolver answers the range minimum query by resolving each seed range
// independently and in parallel. The pipeline is shared read-only.
type Resolver struct {
	pipeline *Pipeline
	config   Config
	logger   *zap.Logger
}

// NewResolver creates a new Resolver. A nil logger discards all output.
func NewResolver(p *Pipeline, config Config, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Resolver{
		pipeline: p,
		config:   config,
		logger:   logger,
	}
}

// MinimumOverRanges returns the same result as the package level
// MinimumOverRanges. It stops early when ctx is cancelled.
func (r *Resolver) MinimumOverRanges(ctx context.Context, ranges []interval.Range) (uint64, error) {
	seedRanges := interval.Merge(ranges)
	if len(seedRanges) == 0 {
		return 0, ErrNoRanges
	}

	if r.config.Workers < 2 || len(seedRanges) == 1 {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		return MinimumOverRanges(seedRanges, r.pipeline)
	}

	minimums := make([]uint64, len(seedRanges))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Workers)

	for i, sr := range seedRanges {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			resolved := r.pipeline.ResolveRanges([]interval.Range{sr})

			best, ok := common.MinFunc(resolved, rangeStart)
			if !ok {
				return fmt.Errorf("seed range %s resolved to nothing", sr)
			}

			r.logger.Debug("Resolved seed range",
				zap.Stringer("range", sr),
				zap.Int("output_ranges", len(resolved)),
				zap.Uint64("minimum", best))

			minimums[i] = best

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	best, _ := common.MinFunc(minimums, func(v uint64) uint64 { return v })

	return best, nil
}
