package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scottkirkwood/fractals"
	"github.com/scottkirkwood/fractals/render"
)

func renderCmd(a *app) *cobra.Command {
	var (
		f      drawFlags
		out    string
		format string
		frames int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one fractal and export it as <family>.<format>",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if frames < 1 {
				return fractals.Errorf("render", fractals.KindInvalidParameter, "--frames %d", frames)
			}
			if err := checkFormat(format); err != nil {
				return err
			}
			d, err := f.newDriver(cmd, a.cfg)
			if err != nil {
				return err
			}
			if out == "" {
				out = a.cfg.OutputDir
			}
			fname, err := renderAndExport(d, out, format, frames)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", fname)
			if d.Family() == fractals.Fern {
				fmt.Fprintf(cmd.OutOrStdout(), "Seed %s\n", d.Seed())
			}
			return nil
		},
	}

	f.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output folder (default output_dir from the config)")
	cmd.Flags().StringVar(&format, "format", "png", "png, bmp, tiff, svg or pdf")
	cmd.Flags().IntVar(&frames, "frames", 50, "frames the fern accumulates before export")
	return cmd
}

// checkFormat rejects export formats before anything is drawn.
func checkFormat(format string) error {
	ext := "." + strings.TrimPrefix(strings.ToLower(format), ".")
	if !slices.Contains(fractals.Formats, ext) {
		return fractals.Errorf("export", fractals.KindInvalidParameter, "--format %q is not one of %v", format, fractals.Formats)
	}
	return nil
}

// renderAndExport draws once, or frames times for the fern, and writes the
// result into dir.
func renderAndExport(d *render.Driver, dir, format string, frames int) (string, error) {
	n := 1
	if d.Family() == fractals.Fern {
		n = frames
	}
	for i := 0; i < n; i++ {
		if err := d.Redraw(); err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return d.Export(dir, format)
}
