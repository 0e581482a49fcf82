package render

import (
	"math"

	"github.com/scottkirkwood/fractals"
	"github.com/scottkirkwood/fractals/fern"
	"github.com/scottkirkwood/fractals/koch"
	"github.com/scottkirkwood/fractals/project"
	"github.com/scottkirkwood/fractals/sierpinski"
	"github.com/scottkirkwood/fractals/tree"
)

// Snapshot returns the project document of the current state. Only the
// selected family's fields are filled.
func (d *Driver) Snapshot() *project.Document {
	p := &d.params
	doc := &project.Document{
		SelectedFractal:  p.Family.String(),
		Color:            fractals.Hex(p.Color()),
		CurrentGraphicsX: float64(d.res.Width),
		CurrentGraphicsY: float64(d.res.Height),
		OriginalRatio:    d.res.Ratio,
		MultiplyFactor:   d.res.Factor,
	}
	switch p.Family {
	case fractals.Tree:
		doc.SelectedTreeType = p.Tree.Topology.String()
		doc.BranchLength = project.Float(p.Tree.Length)
		doc.Angle = project.Float(p.Tree.Angle)
		doc.StrokeWeight = project.Float(p.Tree.StrokeWeight)
	case fractals.Koch:
		doc.SelectedKochType = p.Koch.Shape.String()
		doc.Iterations = project.Int(p.Koch.Iterations)
		doc.KochLength = project.Float(p.Koch.Length)
		doc.KochStrokeWeight = project.Float(p.Koch.StrokeWeight)
	case fractals.Fern:
		doc.SelectedFernType = p.Fern.Variant.String()
	case fractals.Sierpinski:
		doc.SelectedSierpinskiType = p.Sierpinski.Variant.String()
		doc.SIterations = project.Int(p.Sierpinski.Depth + 1)
		doc.SLength = project.Float(p.Sierpinski.Length)
	}
	return doc
}

// Load restores the family, its parameters, the colour and the output
// resolution from doc and regenerates. A document that cannot be applied
// fails with an unsupported_project_format error and changes nothing.
func (d *Driver) Load(doc *project.Document) error {
	p, res, err := d.fromDocument(doc)
	if err != nil {
		fractals.Logger().Warn("project rejected", "err", err)
		return err
	}
	d.params = p
	d.res = res
	d.resetFamily()
	fractals.Logger().Info("project loaded", "family", p.Family, "variant", p.Variant(),
		"width", res.Width, "height", res.Height)
	return d.Redraw()
}

func (d *Driver) fromDocument(doc *project.Document) (Params, Resolution, error) {
	const op = "render.load"
	unsupported := func(err error) (Params, Resolution, error) {
		if fractals.IsKind(err, fractals.KindUnsupportedProjectFormat) {
			return Params{}, Resolution{}, err
		}
		return Params{}, Resolution{}, &fractals.OpError{Op: op, Kind: fractals.KindUnsupportedProjectFormat, Err: err}
	}
	if err := doc.Validate(); err != nil {
		return unsupported(err)
	}
	family, err := doc.Family()
	if err != nil {
		return unsupported(err)
	}
	col, err := fractals.ParseHex(doc.Color)
	if err != nil {
		return unsupported(err)
	}

	p := d.params
	p.Family = family
	p.Fern.Paused = false
	switch family {
	case fractals.Tree:
		if p.Tree.Topology, err = tree.ParseTopology(doc.SelectedTreeType); err != nil {
			return unsupported(err)
		}
		p.Tree.Length = *doc.BranchLength
		p.Tree.Angle = *doc.Angle
		p.Tree.StrokeWeight = *doc.StrokeWeight
	case fractals.Koch:
		if p.Koch.Shape, err = koch.ParseShape(doc.SelectedKochType); err != nil {
			return unsupported(err)
		}
		p.Koch.Iterations = *doc.Iterations
		p.Koch.Length = *doc.KochLength
		p.Koch.StrokeWeight = *doc.KochStrokeWeight
	case fractals.Fern:
		if p.Fern.Variant, err = fern.ParseVariant(doc.SelectedFernType); err != nil {
			return unsupported(err)
		}
	case fractals.Sierpinski:
		if p.Sierpinski.Variant, err = sierpinski.ParseVariant(doc.SelectedSierpinskiType); err != nil {
			return unsupported(err)
		}
		// s_iterations counts levels from 1.
		p.Sierpinski.Depth = *doc.SIterations - 1
		p.Sierpinski.Length = *doc.SLength
	}
	p.SetColor(col)
	if err := p.Validate(); err != nil {
		return unsupported(err)
	}
	p.clamp()

	res := Resolution{Ratio: doc.OriginalRatio, Factor: doc.MultiplyFactor}
	var wc, hc bool
	res.Width, wc = clampDim(math.Ceil(doc.CurrentGraphicsX))
	res.Height, hc = clampDim(math.Ceil(doc.CurrentGraphicsY))
	if wc || hc {
		d.logClamped(op, "project size", res)
	}
	return p, res, nil
}
