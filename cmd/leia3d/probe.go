package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProbeCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Report whether the display library can be loaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.adapter(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if a.IsAvailable() {
				fmt.Fprintln(out, "available: yes")
				return nil
			}
			fmt.Fprintln(out, "available: no")
			fmt.Fprintf(out, "reason: %v\n", a.LoadErr())
			return nil
		},
	}
}
