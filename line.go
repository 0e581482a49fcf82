package fractals

import (
	"fmt"
	"math"
)

// Point is a 2D position on the drawing surface. Y grows downwards.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// FromAngle returns the point at distance r from the origin along angle th
// (radians, 0 points to +X).
func FromAngle(th, r float64) Point {
	sin, cos := math.Sincos(th)
	return Point{X: r * cos, Y: r * sin}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Add returns p+o.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Sub returns p-o.
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

// Mul scales p by f.
func (p Point) Mul(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

// Lerp linearly interpolates from p to o.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{Lerp(p.X, o.X, t), Lerp(p.Y, o.Y, t)}
}

// Rotate rotates p around the origin by th radians. A positive angle turns +X
// into +Y, which is clockwise on a y-down surface.
func (p Point) Rotate(th float64) Point {
	sin, cos := math.Sincos(th)
	return Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

// Hypot returns the distance from the origin.
func (p Point) Hypot() float64 {
	return math.Hypot(p.X, p.Y)
}

// IsFinite reports whether neither coordinate is NaN or infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Segment is a directed line from A to B. The direction matters: rewrite
// rules bend to the same side of it every time.
type Segment struct {
	A, B Point
}

// Seg is shorthand for Segment{a, b}.
func Seg(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Vector returns B-A.
func (s Segment) Vector() Point {
	return s.B.Sub(s.A)
}

// Length of the segment.
func (s Segment) Length() float64 {
	return s.Vector().Hypot()
}

// Reverse returns the same segment walked from B to A.
func (s Segment) Reverse() Segment {
	return Segment{A: s.B, B: s.A}
}

// Crosses returns true if the other segment crosses s.
// Touching end points count as crossing.
func (s Segment) Crosses(other Segment) bool {
	return Crosses(s.A, s.B, other.A, other.B)
}

const colinearEpsilon = 1e-9

func onSegment(p, q, r Point) bool {
	return q.X <= math.Max(p.X, r.X)+colinearEpsilon && q.X >= math.Min(p.X, r.X)-colinearEpsilon &&
		q.Y <= math.Max(p.Y, r.Y)+colinearEpsilon && q.Y >= math.Min(p.Y, r.Y)-colinearEpsilon
}

// To find orientation of ordered triplet (p, q, r).
// The function returns following values
// 0 --> p, q and r are colinear
// 1 --> Clockwise
// 2 --> Counterclockwise
func orientation(p, q, r Point) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	if math.Abs(val) < colinearEpsilon {
		return 0
	}
	if val > 0 {
		return 1
	}
	return 2
}

// Crosses returns true if line segment `p1`, `q1` and `p2`, `q2` crosses.
func Crosses(p1, q1, p2, q2 Point) bool {
	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}
	// Colinear cases: an end point lies on the other segment.
	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}
	return false
}
