package render

import (
	"image/color"
	"math"

	"github.com/scottkirkwood/fractals"
	"github.com/scottkirkwood/fractals/fern"
	"github.com/scottkirkwood/fractals/koch"
	"github.com/scottkirkwood/fractals/sierpinski"
	"github.com/scottkirkwood/fractals/tree"
)

// frame is the output of one generator call, in surface pixels relative to
// offset.
type frame struct {
	prims  []fractals.Primitive
	col    color.Color
	offset fractals.Point
	// keep draws on top of what is already there instead of clearing.
	keep bool
}

// generator builds the next frame of one family from the driver state.
type generator func(d *Driver) (frame, error)

var generators = map[fractals.Family]generator{
	fractals.Tree:       generateTree,
	fractals.Koch:       generateKoch,
	fractals.Fern:       generateFern,
	fractals.Sierpinski: generateSierpinski,
}

// generateTree grows the tree in slider units, so the recursion floor does
// not depend on the output size, then scales it up. The trunk stands on the
// bottom centre.
func generateTree(d *Driver) (frame, error) {
	p := d.params.Tree
	segs, err := tree.Generate(tree.Params{
		Topology:  p.Topology,
		Length:    p.Length,
		Angle:     p.Angle,
		Shrink:    p.Shrink,
		MinLength: p.MinLength,
	})
	if err != nil {
		return frame{}, err
	}
	mf := d.res.Factor
	return frame{
		prims:  fractals.ScaleAll(fractals.Lines(segs, p.StrokeWeight*mf), mf),
		col:    p.Color,
		offset: fractals.Pt(float64(d.res.Width)/2, float64(d.res.Height)),
	}, nil
}

// generateKoch centres the curve on the surface.
func generateKoch(d *Driver) (frame, error) {
	p := d.params.Koch
	mf := d.res.Factor
	segs, err := koch.Generate(p.Shape, p.Length*mf, p.Iterations)
	if err != nil {
		return frame{}, err
	}
	return frame{
		prims:  fractals.Lines(segs, p.StrokeWeight*mf),
		col:    p.Color,
		offset: fractals.Pt(float64(d.res.Width)/2, float64(d.res.Height)/2),
	}, nil
}

func generateSierpinski(d *Driver) (frame, error) {
	p := d.params.Sierpinski
	w, h := float64(d.res.Width), float64(d.res.Height)
	l := p.Length * d.res.Factor
	origin := fractals.Pt((w-l)/2, (h-l)/2)
	if p.Variant == sierpinski.Triangle {
		origin = fractals.Pt(w/2-l/2, h/2+l*math.Sqrt(3)/4)
	}
	prims, err := sierpinski.Generate(p.Variant, origin, l, p.Depth)
	if err != nil {
		return frame{}, err
	}
	return frame{prims: prims, col: p.Color}, nil
}

// generateFern adds Points more points to the attractor. Changing the
// variant clears the surface and restarts the running point at (0,0).
func generateFern(d *Driver) (frame, error) {
	p := d.params.Fern
	fr := frame{col: p.Color, keep: true}
	state := d.fern
	if d.fernVariant != p.Variant {
		state = fern.State{}
		fr.keep = false
	}
	if !p.Paused {
		pts, next, err := fern.Sample(state, p.Variant, p.Points, d.rng.Float64)
		if err != nil {
			return frame{}, err
		}
		state = next
		pl := fern.Place(p.Variant, d.res.Width, d.res.Height)
		fr.prims = fractals.Dots(pl.ProjectAll(pts))
	}
	d.fern, d.fernVariant = state, p.Variant
	return fr, nil
}
