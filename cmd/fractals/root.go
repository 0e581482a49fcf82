package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/scottkirkwood/fractals"
	"github.com/scottkirkwood/fractals/config"
)

// app is the state shared by every subcommand.
type app struct {
	debug      bool
	configPath string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "fractals",
		Short:        "Render trees, Koch curves, ferns and Sierpiński figures",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogger(cmd.ErrOrStderr(), a.debug)
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "log at debug level with source locations")
	cmd.PersistentFlags().StringVar(&a.configPath, "config", config.FileName, "YAML file with the display size and defaults")

	cmd.AddCommand(renderCmd(a))
	cmd.AddCommand(projectCmd(a))
	cmd.AddCommand(watchCmd(a))
	cmd.AddCommand(viewCmd(a))
	return cmd
}

func setupLogger(w io.Writer, debug bool) {
	level := slog.LevelInfo
	addSource := false
	if debug {
		level = slog.LevelDebug
		addSource = true
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})
	fractals.SetLogger(slog.New(h))
}
