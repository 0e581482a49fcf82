package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scottkirkwood/fractals"
	"github.com/scottkirkwood/fractals/config"
	"github.com/scottkirkwood/fractals/project"
	"github.com/scottkirkwood/fractals/render"
)

// drawFlags are the parameter flags shared by render, view and project save.
// Only flags given on the command line override the config and project.
type drawFlags struct {
	family     string
	variant    string
	color      string
	width      string
	height     string
	seed       string
	project    string
	length     float64
	angle      float64
	stroke     float64
	iterations int
	points     int
}

func (f *drawFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.family, "family", "", `Tree, Koch, "Barnsley fern" or Sierpiński`)
	fs.StringVar(&f.variant, "variant", "", `variant as named in the menu, e.g. "Variation 2"`)
	fs.StringVar(&f.color, "color", "", "drawing colour as #rrggbb")
	fs.StringVar(&f.width, "width", "", "output width in pixels; the height keeps the aspect ratio")
	fs.StringVar(&f.height, "height", "", "output height in pixels; the width keeps the aspect ratio")
	fs.StringVar(&f.seed, "seed", "", "hex seed of the fern random source")
	fs.StringVar(&f.project, "project", "", "project JSON to start from")
	fs.Float64Var(&f.length, "length", 0, "branch, curve or figure length")
	fs.Float64Var(&f.angle, "angle", 0, "tree branch angle in radians")
	fs.Float64Var(&f.stroke, "stroke", 0, "stroke weight of trees and Koch curves")
	fs.IntVar(&f.iterations, "iterations", 0, "Koch generations or Sierpiński levels (1 is the bare figure)")
	fs.IntVar(&f.points, "points", 0, "fern points added per frame")
}

// newDriver builds a driver from cfg, then the project file, then the flags.
func (f *drawFlags) newDriver(cmd *cobra.Command, cfg config.Config) (*render.Driver, error) {
	seed, err := fractals.Init(f.seed)
	if err != nil {
		return nil, fmt.Errorf("--seed %q: %w", f.seed, err)
	}
	d, err := render.New(cfg, render.WithSeed(seed))
	if err != nil {
		return nil, err
	}
	if f.project != "" {
		doc, err := project.LoadFile(f.project)
		if err != nil {
			return nil, err
		}
		if err := d.Load(doc); err != nil {
			return nil, err
		}
	}
	if err := f.apply(cmd, d); err != nil {
		return nil, err
	}
	return d, nil
}

// apply pushes the flags that were set onto d.
func (f *drawFlags) apply(cmd *cobra.Command, d *render.Driver) error {
	fs := cmd.Flags()
	p := d.Params()

	if fs.Changed("family") {
		family, err := fractals.ParseFamily(f.family)
		if err != nil {
			return fractals.Errorf("flags", fractals.KindInvalidParameter, "--family: %v", err)
		}
		p.Family = family
	}
	if fs.Changed("variant") {
		if err := p.SetVariant(f.variant); err != nil {
			return err
		}
	}
	if fs.Changed("color") {
		c, err := fractals.ParseHex(f.color)
		if err != nil {
			return fractals.Errorf("flags", fractals.KindInvalidParameter, "--color: %v", err)
		}
		p.SetColor(c)
	}

	ignored := func(name string) {
		fractals.Logger().Warn("flag does not apply to family, ignored", "flag", name, "family", p.Family)
	}
	if fs.Changed("length") {
		switch p.Family {
		case fractals.Tree:
			p.Tree.Length = f.length
		case fractals.Koch:
			p.Koch.Length = f.length
		case fractals.Sierpinski:
			p.Sierpinski.Length = f.length
		default:
			ignored("length")
		}
	}
	if fs.Changed("angle") {
		if p.Family == fractals.Tree {
			p.Tree.Angle = f.angle
		} else {
			ignored("angle")
		}
	}
	if fs.Changed("stroke") {
		switch p.Family {
		case fractals.Tree:
			p.Tree.StrokeWeight = f.stroke
		case fractals.Koch:
			p.Koch.StrokeWeight = f.stroke
		default:
			ignored("stroke")
		}
	}
	if fs.Changed("iterations") {
		switch p.Family {
		case fractals.Koch:
			p.Koch.Iterations = f.iterations
		case fractals.Sierpinski:
			p.Sierpinski.Depth = f.iterations - 1
		default:
			ignored("iterations")
		}
	}
	if fs.Changed("points") {
		if p.Family == fractals.Fern {
			p.Fern.Points = f.points
		} else {
			ignored("points")
		}
	}
	if err := d.SetParams(p); err != nil {
		return err
	}

	if fs.Changed("width") {
		if err := d.SetWidth(f.width); err != nil {
			return err
		}
	}
	if fs.Changed("height") {
		if err := d.SetHeight(f.height); err != nil {
			return err
		}
	}
	return nil
}
