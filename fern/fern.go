// Package fern samples Barnsley fern attractors.
//
// Each step draws r in [0,1), takes the first map whose cumulative threshold
// exceeds r, and applies it to the running point. The running point is a
// plain State value passed in and returned, never package state.
package fern

import (
	"fmt"

	"github.com/scottkirkwood/fractals"
)

// Map is one weighted affine map
//
//	x' = A·x + B·y + E
//	y' = C·x + D·y + F
//
// Threshold is the cumulative probability up to and including this map.
type Map struct {
	A, B, C, D, E, F float64
	Threshold        float64
}

// Apply maps p.
func (m Map) Apply(p State) State {
	return State{
		X: m.A*p.X + m.B*p.Y + m.E,
		Y: m.C*p.X + m.D*p.Y + m.F,
	}
}

// Table is the four maps of one fern, in selection order.
type Table [4]Map

// Select returns the first map whose threshold is above r. Anything past the
// last threshold falls to the last map.
func (t *Table) Select(r float64) Map {
	for _, m := range t[:len(t)-1] {
		if r < m.Threshold {
			return m
		}
	}
	return t[len(t)-1]
}

// Variant names one of the coefficient tables.
type Variant int

const (
	Classic Variant = iota
	Variation1
	Variation2
	Variation3
)

// Variants in menu order.
var Variants = []Variant{Classic, Variation1, Variation2, Variation3}

var variantNames = [...]string{"Classic", "Variation 1", "Variation 2", "Variation 3"}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant is the inverse of Variant.String.
func ParseVariant(name string) (Variant, error) {
	for i, n := range variantNames {
		if n == name {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("unknown fern type %q", name)
}

// Thresholds are kept exactly as published; the variations do not share the
// classic weights.
var tables = [...]Table{
	Classic: {
		{A: 0, B: 0, C: 0, D: 0.16, E: 0, F: 0, Threshold: 0.01},
		{A: 0.85, B: 0.04, C: -0.04, D: 0.85, E: 0, F: 1.60, Threshold: 0.86},
		{A: 0.20, B: -0.26, C: 0.23, D: 0.22, E: 0, F: 1.60, Threshold: 0.93},
		{A: -0.15, B: 0.28, C: 0.26, D: 0.24, E: 0, F: 0.44, Threshold: 1},
	},
	// Variations from https://www.dcnicholls.com/byzantium/ferns/fractal.html
	Variation1: {
		{A: 0, B: 0, C: 0, D: 0.25, E: 0, F: -0.14, Threshold: 0.02},
		{A: 0.85, B: 0.02, C: -0.02, D: 0.83, E: 0, F: 1, Threshold: 0.84},
		{A: 0.09, B: -0.28, C: 0.3, D: 0.11, E: 0, F: 0.6, Threshold: 0.93},
		{A: -0.09, B: 0.28, C: 0.3, D: 0.09, E: 0, F: 0.7, Threshold: 1},
	},
	Variation2: {
		{A: 0, B: 0, C: 0, D: 0.25, E: 0, F: -0.4, Threshold: 0.02},
		{A: 0.95, B: 0.002, C: -0.002, D: 0.93, E: -0.002, F: 0.5, Threshold: 0.84},
		{A: 0.035, B: -0.11, C: 0.27, D: 0.01, E: -0.05, F: 0.005, Threshold: 0.93},
		{A: -0.04, B: 0.11, C: 0.27, D: 0.01, E: 0.047, F: 0.06, Threshold: 1},
	},
	Variation3: {
		{A: 0, B: 0, C: 0, D: 0.25, E: 0, F: -0.4, Threshold: 0.02},
		{A: 0.95, B: 0.005, C: -0.005, D: 0.93, E: -0.002, F: 0.5, Threshold: 0.84},
		{A: 0.035, B: -0.2, C: 0.16, D: 0.04, E: -0.09, F: 0.02, Threshold: 0.93},
		{A: -0.04, B: 0.2, C: 0.16, D: 0.04, E: 0.083, F: 0.12, Threshold: 1},
	},
}

// Coefficients returns the table of v.
func Coefficients(v Variant) (Table, error) {
	if v < 0 || int(v) >= len(tables) {
		return Table{}, fractals.Errorf("fern.coefficients", fractals.KindInvalidParameter, "unknown variant %d", v)
	}
	return tables[v], nil
}

// State is the running point of the sampler in attractor coordinates.
type State struct {
	X, Y float64
}

// Point converts the state to a fractals.Point.
func (s State) Point() fractals.Point {
	return fractals.Pt(s.X, s.Y)
}

// Step advances s by one map chosen with r.
func Step(s State, t *Table, r float64) State {
	return t.Select(r).Apply(s)
}

// Sample advances s n times using rnd for the map choice and returns every
// visited point along with the final state. rnd must return values in [0,1),
// like (*rand.Rand).Float64.
func Sample(s State, v Variant, n int, rnd func() float64) ([]fractals.Point, State, error) {
	t, err := Coefficients(v)
	if err != nil {
		return nil, s, err
	}
	if n < 0 {
		return nil, s, fractals.Errorf("fern.sample", fractals.KindInvalidParameter, "point count %d < 0", n)
	}
	pts := make([]fractals.Point, n)
	for i := range pts {
		s = Step(s, &t, rnd())
		pts[i] = s.Point()
	}
	return pts, s, nil
}
