// Package tree draws recursive branching trees.
//
// Each call draws one branch from the current frame along its heading, moves
// to the tip, and recurses into a fixed schedule of children. Each child may
// step back toward the base of its parent before turning, which is what
// makes the four topologies look different.
package tree

import (
	"fmt"
	"math"

	"github.com/scottkirkwood/fractals"
)

// Topology selects the branching schedule.
type Topology int

const (
	Basic Topology = iota
	Variation1
	Variation2
	Variation3
)

// Topologies in menu order.
var Topologies = []Topology{Basic, Variation1, Variation2, Variation3}

var topologyNames = [...]string{"Basic", "Variation 1", "Variation 2", "Variation 3"}

func (t Topology) String() string {
	if t < 0 || int(t) >= len(topologyNames) {
		return fmt.Sprintf("Topology(%d)", int(t))
	}
	return topologyNames[t]
}

// ParseTopology is the inverse of Topology.String.
func ParseTopology(name string) (Topology, error) {
	for i, n := range topologyNames {
		if n == name {
			return Topology(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tree type %q", name)
}

const (
	// DefaultMinLength is the recursion floor of the variations.
	DefaultMinLength = 5
	// basicStop is the fixed floor of the Basic tree; MinLength does not apply.
	basicStop = 7

	// MaxDepth and MaxSegments bound a single generation. Shrink factors close
	// to 1 otherwise recurse for a very long time.
	MaxDepth    = 10000
	MaxSegments = 1 << 20
)

// branch is one child in a schedule.
type branch struct {
	back   float64 // fraction of the parent length to step back from the tip
	turn   float64 // -1, 0 or +1 times the branch angle
	shrink float64 // added to the shrink factor for this child
}

type schedule struct {
	shrink   float64
	children []branch
}

// The tables are fixed constants; Variation 3 only looks right with exactly
// these offsets.
var schedules = [...]schedule{
	Basic: {0.71, []branch{
		{0, +1, 0},
		{0, -1, 0},
	}},
	Variation1: {0.5, []branch{
		{0, +1, 0},
		{1.0 / 2, -1, 0},
		{0, -1, 0},
	}},
	Variation2: {0.55, []branch{
		{1.0 / 3, +1, 0},
		{1.0 / 2, -1, 0},
		{0, 0, 0},
	}},
	Variation3: {0.25, []branch{
		{0, 0, +0.15},
		{1 / 4.0, +1, 0},
		{1 / 3.5, -1, 0},
		{1 / 2.5, -1, -0.1},
		{1 / 1.5, +1, +0.1},
		{1 / 1.5, -1, +0.1},
		{1 / 1.2, +1, -0.1},
		{1 / 1.03, -1, 0},
	}},
}

// Params describes one tree.
type Params struct {
	Topology Topology
	Length   float64 // trunk length
	Angle    float64 // branch angle in radians
	// Shrink is the length ratio between a branch and its children. Zero
	// picks the topology's own factor.
	Shrink float64
	// MinLength is the recursion floor. Zero means DefaultMinLength.
	MinLength float64
}

// DefaultShrink returns the shrink factor the topology was designed for.
func DefaultShrink(t Topology) float64 {
	return schedules[t].shrink
}

// Frame is a position and heading. Heading 0 points up the surface and
// positive headings turn clockwise.
type Frame struct {
	Origin  fractals.Point
	Heading float64
}

func (f Frame) dir() fractals.Point {
	sin, cos := math.Sincos(f.Heading)
	return fractals.Pt(sin, -cos)
}

// Generate returns the branches of the tree rooted at the origin and growing
// up, in drawing order. Identical params always give identical output.
func Generate(p Params) ([]fractals.Segment, error) {
	return GenerateAt(Frame{}, p)
}

// GenerateAt is Generate with the trunk starting at root.
func GenerateAt(root Frame, p Params) ([]fractals.Segment, error) {
	const op = "tree.generate"
	if p.Topology < 0 || int(p.Topology) >= len(schedules) {
		return nil, fractals.Errorf(op, fractals.KindInvalidParameter, "unknown topology %d", p.Topology)
	}
	if !(p.Length > 0) || math.IsInf(p.Length, 0) {
		return nil, fractals.Errorf(op, fractals.KindInvalidParameter, "length %v must be positive", p.Length)
	}
	if math.IsNaN(p.Angle) || math.IsInf(p.Angle, 0) {
		return nil, fractals.Errorf(op, fractals.KindInvalidParameter, "angle %v", p.Angle)
	}
	if !root.Origin.IsFinite() || math.IsNaN(root.Heading) || math.IsInf(root.Heading, 0) {
		return nil, fractals.Errorf(op, fractals.KindInvalidParameter, "root %v heading %v", root.Origin, root.Heading)
	}

	sched := schedules[p.Topology]
	shrink := DefaultShrink(p.Topology)
	if p.Shrink != 0 {
		shrink = p.Shrink
	}
	// Every child must come out shorter than its parent.
	for _, c := range sched.children {
		if s := shrink + c.shrink; !(s > 0 && s < 1) {
			return nil, fractals.Errorf(op, fractals.KindInvalidParameter, "shrink %v leaves a child factor of %v", shrink, s)
		}
	}

	stop := p.MinLength
	if stop == 0 {
		stop = DefaultMinLength
	}
	if p.Topology == Basic {
		stop = basicStop
	}

	g := &grower{
		angle:    p.Angle,
		shrink:   shrink,
		stop:     stop,
		children: sched.children,
	}
	if err := g.grow(root, p.Length, 0); err != nil {
		return nil, err
	}
	fractals.Logger().Debug("tree generated", "topology", p.Topology, "segments", len(g.segs))
	return g.segs, nil
}

// grower holds the output of one Generate call. Nothing is shared between calls.
type grower struct {
	angle    float64
	shrink   float64
	stop     float64
	children []branch
	segs     []fractals.Segment
}

func (g *grower) grow(f Frame, length float64, depth int) error {
	if depth > MaxDepth || len(g.segs) >= MaxSegments {
		return fractals.Errorf("tree.generate", fractals.KindRecursionLimit,
			"stopped at depth %d with %d segments; shrink factor %v is too close to 1", depth, len(g.segs), g.shrink)
	}
	dir := f.dir()
	tip := f.Origin.Add(dir.Mul(length))
	g.segs = append(g.segs, fractals.Seg(f.Origin, tip))

	if length <= g.stop {
		return nil
	}
	for _, c := range g.children {
		child := Frame{
			Origin:  tip.Sub(dir.Mul(length * c.back)),
			Heading: f.Heading + c.turn*g.angle,
		}
		if err := g.grow(child, length*(g.shrink+c.shrink), depth+1); err != nil {
			return err
		}
	}
	return nil
}
