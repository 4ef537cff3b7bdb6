package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"almanac/internal/almanac"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the parsed almanac as YAML or text",
		Long: `Writes the parsed almanac to stdout in the chosen format, or to
--output, whose extension (.yaml, .yml, anything else for text) picks the
format instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			alm, err := a.load()
			if err != nil {
				return err
			}

			if output != "" {
				if err := almanac.WriteFile(alm, output); err != nil {
					return err
				}

				a.logger.Info("Exported almanac", zap.String("path", output))

				return nil
			}

			var data []byte

			switch format {
			case "yaml", "yml":
				if data, err = almanac.MarshalYAML(alm); err != nil {
					return err
				}
			case "text", "txt":
				data = almanac.Format(alm)
			default:
				return fmt.Errorf("unknown format %q: want yaml or text", format)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or text")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}
