package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/moonlight-stereo/leia-go/pkg/leia"
	"github.com/moonlight-stereo/leia-go/pkg/leia/logging"
)

type globalFlags struct {
	configPath string
	library    string
	debug      bool
}

func newRootCmd() *cobra.Command {
	var g globalFlags
	root := &cobra.Command{
		Use:           "leia3d",
		Short:         "Drive a Leia stereoscopic display",
		Long:          "Probe the Leia display library, detect side-by-side frames and toggle 3D mode.",
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&g.library, "library", "", "shared library name or path (overrides config and $"+leia.EnvLibrary+")")
	root.PersistentFlags().BoolVarP(&g.debug, "debug", "d", false, "enable debug logging")

	root.AddCommand(
		newProbeCmd(&g),
		newDetectCmd(&g),
		newModeCmd(&g),
		newVersionCmd(),
	)
	return root
}

func (g *globalFlags) config() (leia.Config, error) {
	cfg := leia.DefaultConfig()
	if g.configPath != "" {
		var err error
		cfg, err = leia.LoadConfig(g.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
	}
	cfg.ApplyEnv()
	if g.library != "" {
		cfg.LibraryName = g.library
	}
	return cfg, nil
}

func (g *globalFlags) logger(cmd *cobra.Command) logging.Logger {
	level := slog.LevelInfo
	if g.debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	return logging.New(slog.New(h))
}

func (g *globalFlags) adapter(cmd *cobra.Command, opts ...leia.Option) (*leia.Adapter, error) {
	cfg, err := g.config()
	if err != nil {
		return nil, err
	}
	opts = append([]leia.Option{leia.WithLogger(g.logger(cmd))}, opts...)
	return leia.New(contextOf(cmd), cfg, opts...), nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "leia3d %s (%s)\n", leia.WrapperVersion(), leia.Commit)
		},
	}
}
