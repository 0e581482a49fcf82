// Package sierpinski subdivides triangles and squares into Sierpiński
// triangles and carpets.
package sierpinski

import (
	"fmt"
	"math"

	"github.com/scottkirkwood/fractals"
)

// Variant picks triangle or carpet subdivision.
type Variant int

const (
	Triangle Variant = iota
	Carpet
)

// Variants in menu order.
var Variants = []Variant{Triangle, Carpet}

var variantNames = [...]string{"Triangle", "Carpet"}

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
	return 0, fmt.Errorf("unknown sierpinski type %q", name)
}

// Children is how many cells one cell splits into.
func (v Variant) Children() int {
	if v == Carpet {
		return 8
	}
	return 3
}

const (
	// MaxDepth and MaxCells bound one generation.
	MaxDepth = 32
	MaxCells = 1 << 21
)

var sqrt3 = math.Sqrt(3)

// Cell is one region of the subdivision. For triangles Origin is the
// bottom-left corner of an equilateral triangle; for carpets it is the
// top-left corner of a square.
type Cell struct {
	Origin fractals.Point
	Side   float64
	Depth  int
}

// Primitive returns the filled shape of the cell.
func (c Cell) Primitive(v Variant) fractals.Primitive {
	if v == Carpet {
		return fractals.Square(c.Origin, c.Side)
	}
	x, y, l := c.Origin.X, c.Origin.Y, c.Side
	return fractals.Triangle(
		fractals.Pt(x, y),
		fractals.Pt(x+l/2, y-l*sqrt3/2),
		fractals.Pt(x+l, y),
	)
}

// Split returns the child cells, one level deeper.
func (c Cell) Split(v Variant) []Cell {
	x, y, d := c.Origin.X, c.Origin.Y, c.Depth+1
	if v == Carpet {
		l := c.Side / 3
		cells := make([]Cell, 0, 8)
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if row == 1 && col == 1 {
					continue
				}
				cells = append(cells, Cell{
					Origin: fractals.Pt(x+float64(col)*l, y+float64(row)*l),
					Side:   l,
					Depth:  d,
				})
			}
		}
		return cells
	}
	l := c.Side / 2
	return []Cell{
		{Origin: fractals.Pt(x, y), Side: l, Depth: d},
		{Origin: fractals.Pt(x+l, y), Side: l, Depth: d},
		{Origin: fractals.Pt(x+l/2, y-l*sqrt3/2), Side: l, Depth: d},
	}
}

// Count returns the number of leaves at depth, or -1 past MaxCells.
func Count(v Variant, depth int) int {
	n := 1
	for i := 0; i < depth; i++ {
		n *= v.Children()
		if n > MaxCells {
			return -1
		}
	}
	return n
}

// Generate subdivides the cell at origin depth times and returns the leaves
// in recursion order. Depth 0 is the undivided shape.
func Generate(v Variant, origin fractals.Point, side float64, depth int) ([]fractals.Primitive, error) {
	const op = "sierpinski.generate"
	if v != Triangle && v != Carpet {
		return nil, fractals.Errorf(op, fractals.KindInvalidParameter, "unknown variant %d", v)
	}
	if depth < 0 {
		return nil, fractals.Errorf(op, fractals.KindInvalidParameter, "depth %d < 0", depth)
	}
	if !(side > 0) || math.IsInf(side, 0) {
		return nil, fractals.Errorf(op, fractals.KindInvalidParameter, "side %v must be positive", side)
	}
	n := Count(v, depth)
	if depth > MaxDepth || n < 0 {
		return nil, fractals.Errorf(op, fractals.KindRecursionLimit, "%v depth %d needs more than %d cells", v, depth, MaxCells)
	}

	prims := make([]fractals.Primitive, 0, n)
	var divide func(c Cell)
	divide = func(c Cell) {
		if c.Depth == depth {
			prims = append(prims, c.Primitive(v))
			return
		}
		for _, child := range c.Split(v) {
			divide(child)
		}
	}
	divide(Cell{Origin: origin, Side: side})
	fractals.Logger().Debug("sierpinski generated", "variant", v, "depth", depth, "cells", len(prims))
	return prims, nil
}
