package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCheckCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report overlapping mappings, empty stages and stage chain breaks",
		Long: `Validates the almanac without resolving anything.

Overlapping mappings inside a stage are resolved in favour of the first
listed mapping; check reports them so the input can be fixed. With
--strict every warning fails the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			alm, err := a.load()
			if err != nil {
				return err
			}

			res := alm.Validate()
			out := cmd.OutOrStdout()

			for _, d := range res.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			a.logger.Debug("Validated almanac",
				zap.Int("errors", len(res.Errors)),
				zap.Int("warnings", len(res.Warnings)),
				zap.Int("infos", len(res.Infos)))

			if err := res.Error(); err != nil {
				return err
			}

			if strict && len(res.Warnings) > 0 {
				return fmt.Errorf("%d warning(s) in strict mode", len(res.Warnings))
			}

			fmt.Fprintln(out, "ok")

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")

	return cmd
}
