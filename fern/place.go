package fern

import "github.com/scottkirkwood/fractals"

// Domain is the bounding box of the classic attractor, used to map every
// variant onto the surface.
var Domain = struct {
	MinX, MaxX, MinY, MaxY float64
}{-2.1820, 2.6558, 0, 9.9983}

// Placement is where the attractor square lands on a surface: the top-left
// corner and the side of the square the domain is stretched over.
type Placement struct {
	Origin fractals.Point
	Size   float64
}

// Place returns the placement of v on a width x height surface.
func Place(v Variant, width, height int) Placement {
	w, h := float64(width), float64(height)
	switch v {
	case Variation1:
		return Placement{Origin: fractals.Pt(w/5, -h/3), Size: 1.2 * h}
	case Variation2, Variation3:
		return Placement{Origin: fractals.Pt(w/4, -h/3), Size: 1.2 * h}
	}
	return Placement{Origin: fractals.Pt((w-h/7)/3, h/7), Size: 0.75 * h}
}

// Project maps an attractor point onto the surface. Y is flipped so the fern
// grows upwards.
func (pl Placement) Project(p fractals.Point) fractals.Point {
	return fractals.Pt(
		pl.Origin.X+fractals.Remap(p.X, Domain.MinX, Domain.MaxX, 0, pl.Size),
		pl.Origin.Y+fractals.Remap(p.Y, Domain.MinY, Domain.MaxY, pl.Size, 0),
	)
}

// ProjectAll maps pts in place and returns them.
func (pl Placement) ProjectAll(pts []fractals.Point) []fractals.Point {
	for i, p := range pts {
		pts[i] = pl.Project(p)
	}
	return pts
}
