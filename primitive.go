package fractals

import (
	"image/color"
	"math"
)

// Shape tags a Primitive.
type Shape uint8

const (
	ShapeLine     Shape = iota // P[0] to P[1], stroked with Weight
	ShapeDot                   // a single point at P[0]
	ShapeTriangle              // filled triangle P[0], P[1], P[2]
	ShapeSquare                // filled axis-aligned square, top-left P[0], side Side
)

// Primitive is one element of the stream a generator hands to a Surface.
type Primitive struct {
	Shape  Shape
	P      [3]Point
	Side   float64
	Weight float64
}

// Line returns a stroked line primitive.
func Line(s Segment, weight float64) Primitive {
	return Primitive{Shape: ShapeLine, P: [3]Point{s.A, s.B}, Weight: weight}
}

// Dot returns a point primitive.
func Dot(p Point) Primitive {
	return Primitive{Shape: ShapeDot, P: [3]Point{p}}
}

// Triangle returns a filled triangle primitive.
func Triangle(a, b, c Point) Primitive {
	return Primitive{Shape: ShapeTriangle, P: [3]Point{a, b, c}}
}

// Square returns a filled square primitive.
func Square(topLeft Point, side float64) Primitive {
	return Primitive{Shape: ShapeSquare, P: [3]Point{topLeft}, Side: side}
}

// Lines converts segments into line primitives of the same weight.
func Lines(segs []Segment, weight float64) []Primitive {
	prims := make([]Primitive, len(segs))
	for i, s := range segs {
		prims[i] = Line(s, weight)
	}
	return prims
}

// Dots converts points into dot primitives.
func Dots(pts []Point) []Primitive {
	prims := make([]Primitive, len(pts))
	for i, p := range pts {
		prims[i] = Dot(p)
	}
	return prims
}

// ScaleAll scales the geometry of prims about the origin, in place. Stroke
// weights are left alone.
func ScaleAll(prims []Primitive, f float64) []Primitive {
	for i := range prims {
		for j := range prims[i].P {
			prims[i].P[j] = prims[i].P[j].Mul(f)
		}
		prims[i].Side *= f
	}
	return prims
}

// Surface is anything primitives can be drawn on. Coordinates are in surface
// units (pixels for a raster) and pass through the current transform.
type Surface interface {
	Size() (width, height int)
	Clear(bg color.Color)
	DrawLine(a, b Point, weight float64, col color.Color)
	DrawPoint(p Point, col color.Color)
	FillTriangle(a, b, c Point, col color.Color)
	FillSquare(topLeft Point, side float64, col color.Color)

	Push()
	Pop()
	Translate(dx, dy float64)
	Rotate(angle float64)
	Scale(sx, sy float64)
}

// Paint draws prims in order with a single colour.
func Paint(s Surface, prims []Primitive, col color.Color) {
	for _, p := range prims {
		switch p.Shape {
		case ShapeLine:
			s.DrawLine(p.P[0], p.P[1], p.Weight, col)
		case ShapeDot:
			s.DrawPoint(p.P[0], col)
		case ShapeTriangle:
			s.FillTriangle(p.P[0], p.P[1], p.P[2], col)
		case ShapeSquare:
			s.FillSquare(p.P[0], p.Side, col)
		}
	}
}

// Bounds returns the bounding box of prims as min and max corners.
// An empty stream gives two NaN points.
func Bounds(prims []Primitive) (lo, hi Point) {
	lo = Pt(math.Inf(1), math.Inf(1))
	hi = Pt(math.Inf(-1), math.Inf(-1))
	grow := func(p Point) {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	for _, p := range prims {
		switch p.Shape {
		case ShapeLine:
			grow(p.P[0])
			grow(p.P[1])
		case ShapeDot:
			grow(p.P[0])
		case ShapeTriangle:
			grow(p.P[0])
			grow(p.P[1])
			grow(p.P[2])
		case ShapeSquare:
			grow(p.P[0])
			grow(p.P[0].Add(Pt(p.Side, p.Side)))
		}
	}
	if len(prims) == 0 {
		return Pt(math.NaN(), math.NaN()), Pt(math.NaN(), math.NaN())
	}
	return lo, hi
}
