package main

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/moonlight-stereo/leia-go/pkg/leia"
)

// countingNative counts mode switches that reach the library.
type countingNative struct {
	leia.Native
	switches atomic.Int64
}

func (c *countingNative) SetMode(on bool, mode int) {
	c.switches.Add(1)
	c.Native.SetMode(on, mode)
}

func newModeCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "mode on|off [on|off...]",
		Short: "Switch the display between 2D and 3D",
		Long: `Mode applies each requested state in order through one adapter. The
display starts in 2D, so requests matching the current state are dropped
without touching the hardware.`,
		Example: `
leia3d mode on
leia3d mode on on off`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			states, err := parseStates(args)
			if err != nil {
				return err
			}

			var counter *countingNative
			probe := func(cfg leia.Config) (leia.Native, error) {
				n, err := leia.LoadNative(cfg)
				if err != nil {
					return nil, err
				}
				counter = &countingNative{Native: n}
				return counter, nil
			}

			a, err := g.adapter(cmd, leia.WithProbe(probe))
			if err != nil {
				return err
			}
			defer a.Close()

			if !a.IsAvailable() {
				return fmt.Errorf("cannot change mode: %w", a.LoadErr())
			}
			for _, on := range states {
				a.Set3DMode(on)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "3d=%t switches=%d\n", a.Is3DEnabled(), counter.switches.Load())
			return nil
		},
	}
}

func parseStates(args []string) ([]bool, error) {
	states := make([]bool, 0, len(args))
	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "on", "3d", "true", "1":
			states = append(states, true)
		case "off", "2d", "false", "0":
			states = append(states, false)
		default:
			return nil, fmt.Errorf("unknown mode %q (want on or off)", arg)
		}
	}
	return states, nil
}
