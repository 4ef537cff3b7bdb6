// Package main provides the CLI entrypoint for almanac.
//
// almanac reads a seed almanac, pushes every seed through the stage
// pipeline and prints:
//   - Part 1: the closest location of any listed seed
//   - Part 2: the closest location of any seed in the listed seed ranges
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"almanac/internal/almanac"
	"almanac/internal/config"
	"almanac/internal/interval"
	"almanac/internal/pipeline"
)

// app carries state shared by all subcommands.
type app struct {
	cfg    config.Config
	logger *zap.Logger

	// flag values, applied over cfg when set
	input   string
	workers int
	verbose bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "almanac",
		Short: "Find the closest seed location in an almanac",
		Long: `almanac parses a seed list and an ordered set of stage maps
(seed-to-soil, soil-to-fertilizer, ... humidity-to-location) and prints
the lowest location for the listed seeds (Part 1) and for the seed
ranges they describe (Part 2).

Whole seed ranges are pushed through each stage at once, so ranges
spanning billions of seeds resolve without visiting every seed.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runSolve,
	}

	root.PersistentFlags().StringVarP(&a.input, "input", "i", config.DefaultInputPath,
		"almanac file (.txt or .yaml), env "+config.EnvInput)
	root.PersistentFlags().IntVarP(&a.workers, "workers", "w", 0,
		"seed ranges resolved in parallel (0 = one per CPU), env "+config.EnvWorkers)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"enable debug logging, env "+config.EnvVerbose)

	root.AddCommand(
		newCheckCmd(a),
		newTraceCmd(a),
		newExportCmd(a),
		newDumpCmd(a),
	)

	return root
}

// setup resolves configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.InputPath = a.input
	}

	if flags.Changed("workers") {
		if a.workers < 0 {
			return fmt.Errorf("invalid --workers %d: want a non-negative integer", a.workers)
		}

		cfg.Workers = a.workers
	}

	if cfg.Workers == 0 {
		cfg.Workers = pipeline.DefaultConfig().Workers
	}

	if flags.Changed("verbose") {
		cfg.Verbose = a.verbose
	}

	a.cfg = cfg

	if a.logger != nil {
		return nil
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	a.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

func (a *app) load() (*almanac.Almanac, error) {
	alm, err := almanac.LoadFile(a.cfg.InputPath)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("Loaded almanac",
		zap.String("path", a.cfg.InputPath),
		zap.Int("seeds", len(alm.Seeds)),
		zap.Int("seed_ranges", len(alm.SeedRanges)),
		zap.Uint64("range_seeds", interval.Total(alm.SeedRanges)),
		zap.Int("stages", alm.Pipeline.Len()))

	return alm, nil
}

func (a *app) runSolve(cmd *cobra.Command, _ []string) error {
	alm, err := a.load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	part1, err := alm.ClosestSeedLocation()
	if err != nil {
		return fmt.Errorf("part 1: %w", err)
	}

	fmt.Fprintf(out, "Part 1: %d\n", part1)

	resolver := pipeline.NewResolver(alm.Pipeline, a.cfg.ResolverConfig(), a.logger)

	part2, err := resolver.MinimumOverRanges(cmd.Context(), alm.SeedRanges)
	if err != nil {
		return fmt.Errorf("part 2: %w", err)
	}

	fmt.Fprintf(out, "Part 2: %d\n", part2)

	return nil
}
