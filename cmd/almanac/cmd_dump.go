package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the parsed almanac structure for debugging",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			alm, err := a.load()
			if err != nil {
				return err
			}

			cs := spew.ConfigState{
				Indent:                  "  ",
				DisablePointerAddresses: true,
				DisableCapacities:       true,
				SortKeys:                true,
			}
			cs.Fdump(cmd.OutOrStdout(), alm)

			return nil
		},
	}
}
