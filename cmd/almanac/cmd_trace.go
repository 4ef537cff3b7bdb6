package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"almanac/internal/mapping"
)

func newTraceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <seed>...",
		Short: "Show the value of each seed after every stage",
		Example: `  almanac trace 79 14
  seed 79, soil 81, fertilizer 81, water 81, light 74, temperature 78, humidity 78, location 82`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds := make([]uint64, 0, len(args))

			for _, arg := range args {
				v, err := strconv.ParseUint(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid seed %q: %w", arg, err)
				}

				seeds = append(seeds, v)
			}

			alm, err := a.load()
			if err != nil {
				return err
			}

			names := domainNames(alm.Pipeline.Stages())
			out := cmd.OutOrStdout()

			for _, seed := range seeds {
				values := alm.Pipeline.Trace(seed)
				parts := make([]string, 0, len(values))

				for i, v := range values {
					parts = append(parts, fmt.Sprintf("%s %d", names[i], v))
				}

				fmt.Fprintln(out, strings.Join(parts, ", "))
			}

			return nil
		},
	}
}

// domainNames labels the value before the first stage and after every
// stage. Stages whose titles do not name their domains fall back to the
// title itself.
func domainNames(stages []mapping.RuleSet) []string {
	names := make([]string, 0, len(stages)+1)
	names = append(names, "seed")

	if len(stages) > 0 {
		if from, _, ok := stages[0].Domains(); ok {
			names[0] = from
		}
	}

	for _, s := range stages {
		if _, to, ok := s.Domains(); ok {
			names = append(names, to)
		} else {
			names = append(names, s.Title)
		}
	}

	return names
}
