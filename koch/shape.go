package koch

import (
	"fmt"
	"math"

	"github.com/scottkirkwood/fractals"
)

// Shape is a boundary seed together with the rule that grows it.
type Shape int

const (
	Line Shape = iota
	Snowflake
	Antisnowflake
	MinkowskiSausage
	MinkowskiIsland
)

// Shapes in menu order.
var Shapes = []Shape{Line, Snowflake, Antisnowflake, MinkowskiSausage, MinkowskiIsland}

var shapeNames = [...]string{"Line", "Snowflake", "Antisnowflake", "Minkowski sausage", "Minkowski island"}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape is the inverse of Shape.String.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown koch type %q", name)
}

// Rule returns the rewrite rule the shape uses.
func (s Shape) Rule() Rule {
	if s == MinkowskiSausage || s == MinkowskiIsland {
		return Octic
	}
	return Triadic
}

// Seed returns the initial segments, centred on the origin. Lines run from
// -length/2 to +length/2; closed shapes have their corners at distance
// length from the origin.
func (s Shape) Seed(length float64) []fractals.Segment {
	switch s {
	case Line, MinkowskiSausage:
		return []fractals.Segment{
			fractals.Seg(fractals.Pt(-length/2, 0), fractals.Pt(length/2, 0)),
		}
	case Snowflake:
		return polygon(3, length)
	case Antisnowflake:
		// The snowflake walked backwards, so every edge bends the other way.
		tri := polygon(3, length)
		segs := make([]fractals.Segment, len(tri))
		for i, seg := range tri {
			segs[len(tri)-1-i] = seg.Reverse()
		}
		return segs
	case MinkowskiIsland:
		return polygon(4, length)
	}
	return nil
}

// polygon walks a regular n-gon of circumradius r starting on +X.
func polygon(n int, r float64) []fractals.Segment {
	segs := make([]fractals.Segment, n)
	for i := 0; i < n; i++ {
		a := fractals.FromAngle(2*math.Pi*float64(i)/float64(n), r)
		b := fractals.FromAngle(2*math.Pi*float64((i+1)%n)/float64(n), r)
		segs[i] = fractals.Seg(a, b)
	}
	return segs
}

// Generate grows shape for the given number of generations.
func Generate(shape Shape, length float64, generations int) ([]fractals.Segment, error) {
	if shape < 0 || int(shape) >= len(shapeNames) {
		return nil, fractals.Errorf("koch.generate", fractals.KindInvalidParameter, "unknown shape %d", shape)
	}
	if !(length > 0) || math.IsInf(length, 0) {
		return nil, fractals.Errorf("koch.generate", fractals.KindInvalidParameter, "length %v must be positive", length)
	}
	return Rewrite(shape.Seed(length), shape.Rule(), generations)
}
