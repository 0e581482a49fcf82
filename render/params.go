package render

import (
	"image/color"
	"math"

	"github.com/scottkirkwood/fractals"
	"github.com/scottkirkwood/fractals/config"
	"github.com/scottkirkwood/fractals/fern"
	"github.com/scottkirkwood/fractals/koch"
	"github.com/scottkirkwood/fractals/sierpinski"
	"github.com/scottkirkwood/fractals/tree"
)

const (
	// MaxKochGenerations bounds the rewrite rounds; 5 already gives 4096
	// segments per seed segment for the Koch rule and 32768 for Minkowski.
	MaxKochGenerations = 5
	// MaxCarpetDepth and MaxTriangleDepth are the slider limits of 6 and 10
	// levels, as subdivision rounds.
	MaxCarpetDepth   = 5
	MaxTriangleDepth = 9
	// DefaultFernPoints is how many points one fern redraw adds.
	DefaultFernPoints = 1000
)

// TreeParams are the sliders of the tree family. Lengths and weights are in
// display pixels and get multiplied by the resolution factor.
type TreeParams struct {
	Topology     tree.Topology
	Length       float64
	Angle        float64 // radians
	StrokeWeight float64
	Color        color.NRGBA
	// Shrink and MinLength override the topology defaults when non-zero.
	Shrink    float64
	MinLength float64
}

type KochParams struct {
	Shape        koch.Shape
	Iterations   int
	Length       float64
	StrokeWeight float64
	Color        color.NRGBA
}

type FernParams struct {
	Variant fern.Variant
	Color   color.NRGBA
	Points  int  // points added per redraw
	Paused  bool // stop adding points, keep what is drawn
}

type SierpinskiParams struct {
	Variant sierpinski.Variant
	Depth   int // subdivision rounds, one less than the levels shown
	Length     float64
	Color      color.NRGBA
}

// Params is the full parameter snapshot. Only the block of the selected
// Family is used for drawing; the others keep their last values so switching
// back restores them.
type Params struct {
	Family     fractals.Family
	Tree       TreeParams
	Koch       KochParams
	Fern       FernParams
	Sierpinski SierpinskiParams
}

// DefaultParams converts the config defaults. The tree family is selected.
func DefaultParams(cfg config.Config) (Params, error) {
	const op = "render.default_params"
	wrap := func(err error) error {
		return &fractals.OpError{Op: op, Kind: fractals.KindInvalidParameter, Err: err}
	}
	var (
		p   = Params{Family: fractals.Tree}
		err error
	)

	if p.Tree.Topology, err = tree.ParseTopology(cfg.Tree.Variant); err != nil {
		return p, wrap(err)
	}
	p.Tree.Length = cfg.Tree.Length
	p.Tree.Angle = cfg.Tree.Angle
	p.Tree.StrokeWeight = cfg.Tree.StrokeWeight

	if p.Koch.Shape, err = koch.ParseShape(cfg.Koch.Variant); err != nil {
		return p, wrap(err)
	}
	p.Koch.Iterations = cfg.Koch.Iterations
	p.Koch.Length = cfg.Koch.Length
	p.Koch.StrokeWeight = cfg.Koch.StrokeWeight

	if p.Fern.Variant, err = fern.ParseVariant(cfg.Fern.Variant); err != nil {
		return p, wrap(err)
	}
	p.Fern.Points = cfg.FernPoints

	if p.Sierpinski.Variant, err = sierpinski.ParseVariant(cfg.Sierpinski.Variant); err != nil {
		return p, wrap(err)
	}
	p.Sierpinski.Depth = cfg.Sierpinski.Iterations - 1
	p.Sierpinski.Length = cfg.Sierpinski.Length

	colors := []struct {
		dst *color.NRGBA
		hex string
	}{
		{&p.Tree.Color, cfg.Tree.Color},
		{&p.Koch.Color, cfg.Koch.Color},
		{&p.Fern.Color, cfg.Fern.Color},
		{&p.Sierpinski.Color, cfg.Sierpinski.Color},
	}
	for _, c := range colors {
		if *c.dst, err = fractals.ParseHex(c.hex); err != nil {
			return p, wrap(err)
		}
	}

	if err := p.Validate(); err != nil {
		return p, err
	}
	p.clamp()
	return p, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Validate checks every block, not only the selected one.
func (p *Params) Validate() error {
	const op = "render.validate"
	bad := func(format string, args ...interface{}) error {
		return fractals.Errorf(op, fractals.KindInvalidParameter, format, args...)
	}
	switch {
	case !p.Family.Valid():
		return bad("unknown family %d", p.Family)

	case int(p.Tree.Topology) < 0 || int(p.Tree.Topology) >= len(tree.Topologies):
		return bad("unknown tree type %d", p.Tree.Topology)
	case !positive(p.Tree.Length):
		return bad("branch length %v", p.Tree.Length)
	case math.IsNaN(p.Tree.Angle) || math.IsInf(p.Tree.Angle, 0):
		return bad("angle %v", p.Tree.Angle)
	case p.Tree.StrokeWeight < 0 || p.Tree.Shrink < 0 || p.Tree.MinLength < 0:
		return bad("negative tree stroke, shrink or min length")

	case int(p.Koch.Shape) < 0 || int(p.Koch.Shape) >= len(koch.Shapes):
		return bad("unknown koch type %d", p.Koch.Shape)
	case p.Koch.Iterations < 0:
		return bad("koch iterations %d", p.Koch.Iterations)
	case !positive(p.Koch.Length):
		return bad("koch length %v", p.Koch.Length)
	case p.Koch.StrokeWeight < 0:
		return bad("koch stroke weight %v", p.Koch.StrokeWeight)

	case int(p.Fern.Variant) < 0 || int(p.Fern.Variant) >= len(fern.Variants):
		return bad("unknown fern type %d", p.Fern.Variant)
	case p.Fern.Points < 0:
		return bad("fern points %d", p.Fern.Points)

	case p.Sierpinski.Variant != sierpinski.Triangle && p.Sierpinski.Variant != sierpinski.Carpet:
		return bad("unknown sierpinski type %d", p.Sierpinski.Variant)
	case p.Sierpinski.Depth < 0:
		return bad("sierpinski depth %d", p.Sierpinski.Depth)
	case !positive(p.Sierpinski.Length):
		return bad("sierpinski length %v", p.Sierpinski.Length)
	}
	return nil
}

// clamp applies the slider limits.
func (p *Params) clamp() {
	if p.Koch.Iterations > MaxKochGenerations {
		fractals.Logger().Info("koch iterations clamped", "from", p.Koch.Iterations, "to", MaxKochGenerations)
		p.Koch.Iterations = MaxKochGenerations
	}
	limit := MaxTriangleDepth
	if p.Sierpinski.Variant == sierpinski.Carpet {
		limit = MaxCarpetDepth
	}
	if p.Sierpinski.Depth > limit {
		fractals.Logger().Info("sierpinski depth clamped", "variant", p.Sierpinski.Variant,
			"from", p.Sierpinski.Depth, "to", limit)
		p.Sierpinski.Depth = limit
	}
}

// Variant returns the menu label of the selected family's variant.
func (p *Params) Variant() string {
	switch p.Family {
	case fractals.Tree:
		return p.Tree.Topology.String()
	case fractals.Koch:
		return p.Koch.Shape.String()
	case fractals.Fern:
		return p.Fern.Variant.String()
	case fractals.Sierpinski:
		return p.Sierpinski.Variant.String()
	}
	return ""
}

// SetVariant selects a variant of the current family by its menu label.
func (p *Params) SetVariant(name string) error {
	var err error
	switch p.Family {
	case fractals.Tree:
		p.Tree.Topology, err = tree.ParseTopology(name)
	case fractals.Koch:
		p.Koch.Shape, err = koch.ParseShape(name)
	case fractals.Fern:
		p.Fern.Variant, err = fern.ParseVariant(name)
	case fractals.Sierpinski:
		p.Sierpinski.Variant, err = sierpinski.ParseVariant(name)
	}
	if err != nil {
		return &fractals.OpError{Op: "render.set_variant", Kind: fractals.KindInvalidParameter, Err: err}
	}
	return nil
}

// CycleVariant moves step entries through the variant menu of the current
// family, wrapping around.
func (p *Params) CycleVariant(step int) {
	next := func(cur, n int) int {
		return ((cur+step)%n + n) % n
	}
	switch p.Family {
	case fractals.Tree:
		p.Tree.Topology = tree.Topology(next(int(p.Tree.Topology), len(tree.Topologies)))
	case fractals.Koch:
		p.Koch.Shape = koch.Shape(next(int(p.Koch.Shape), len(koch.Shapes)))
	case fractals.Fern:
		p.Fern.Variant = fern.Variant(next(int(p.Fern.Variant), len(fern.Variants)))
	case fractals.Sierpinski:
		p.Sierpinski.Variant = sierpinski.Variant(next(int(p.Sierpinski.Variant), len(sierpinski.Variants)))
	}
}

// Color returns the drawing colour of the selected family.
func (p *Params) Color() color.NRGBA {
	switch p.Family {
	case fractals.Koch:
		return p.Koch.Color
	case fractals.Fern:
		return p.Fern.Color
	case fractals.Sierpinski:
		return p.Sierpinski.Color
	}
	return p.Tree.Color
}

// SetColor sets the drawing colour of the selected family.
func (p *Params) SetColor(c color.NRGBA) {
	switch p.Family {
	case fractals.Tree:
		p.Tree.Color = c
	case fractals.Koch:
		p.Koch.Color = c
	case fractals.Fern:
		p.Fern.Color = c
	case fractals.Sierpinski:
		p.Sierpinski.Color = c
	}
}
