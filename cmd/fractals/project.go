package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/scottkirkwood/fractals"
	"github.com/scottkirkwood/fractals/project"
)

func projectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Write or inspect project files",
	}
	cmd.AddCommand(projectSaveCmd(a))
	cmd.AddCommand(projectShowCmd())
	return cmd
}

func projectSaveCmd(a *app) *cobra.Command {
	var (
		f    drawFlags
		file string
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the parameters given as flags to a project file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := f.newDriver(cmd, a.cfg)
			if err != nil {
				return err
			}
			if file == "" {
				file = filepath.Join(a.cfg.OutputDir, project.FileName(d.Family()))
			}
			if err := project.SaveFile(file, d.Snapshot()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", file)
			return nil
		},
	}

	f.register(cmd)
	cmd.Flags().StringVar(&file, "file", "", "project file (default <family>.json in output_dir)")
	return cmd
}

func projectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Print a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := project.LoadFile(args[0])
			if err != nil {
				return err
			}
			printDocument(cmd.OutOrStdout(), doc)
			return nil
		},
	}
}

// printDocument expects a validated document.
func printDocument(w io.Writer, doc *project.Document) {
	fmt.Fprintf(w, "Family:     %s\n", doc.SelectedFractal)
	family, _ := doc.Family()
	switch family {
	case fractals.Tree:
		fmt.Fprintf(w, "Variant:    %s\n", doc.SelectedTreeType)
		fmt.Fprintf(w, "Length:     %g\n", *doc.BranchLength)
		fmt.Fprintf(w, "Angle:      %g\n", *doc.Angle)
		fmt.Fprintf(w, "Stroke:     %g\n", *doc.StrokeWeight)
	case fractals.Koch:
		fmt.Fprintf(w, "Variant:    %s\n", doc.SelectedKochType)
		fmt.Fprintf(w, "Iterations: %d\n", *doc.Iterations)
		fmt.Fprintf(w, "Length:     %g\n", *doc.KochLength)
		fmt.Fprintf(w, "Stroke:     %g\n", *doc.KochStrokeWeight)
	case fractals.Fern:
		fmt.Fprintf(w, "Variant:    %s\n", doc.SelectedFernType)
	default:
		fmt.Fprintf(w, "Variant:    %s\n", doc.SelectedSierpinskiType)
		fmt.Fprintf(w, "Iterations: %d\n", *doc.SIterations)
		fmt.Fprintf(w, "Length:     %g\n", *doc.SLength)
	}
	fmt.Fprintf(w, "Color:      %s\n", doc.Color)
	fmt.Fprintf(w, "Size:       %gx%g (ratio %g, factor %g)\n",
		doc.CurrentGraphicsX, doc.CurrentGraphicsY, doc.OriginalRatio, doc.MultiplyFactor)
}
