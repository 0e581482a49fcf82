package fractals

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// RasterContext is a Surface backed by a gg raster.
type RasterContext struct {
	dc *gg.Context
}

// NewRasterContext creates a raster of width x height pixels.
func NewRasterContext(width, height int) *RasterContext {
	dc := gg.NewContext(width, height)
	dc.SetLineCap(gg.LineCapRound)
	return &RasterContext{dc: dc}
}

// Size in pixels.
func (r *RasterContext) Size() (int, int) {
	return r.dc.Width(), r.dc.Height()
}

// Clear paints the whole raster with bg, ignoring the current transform.
func (r *RasterContext) Clear(bg color.Color) {
	r.dc.SetColor(bg)
	r.dc.Clear()
}

func (r *RasterContext) DrawLine(a, b Point, weight float64, col color.Color) {
	r.dc.SetColor(col)
	r.dc.SetLineWidth(weight)
	r.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	r.dc.Stroke()
}

// DrawPoint draws a 1 pixel rectangle at point
func (r *RasterContext) DrawPoint(p Point, col color.Color) {
	r.dc.SetColor(col)
	r.dc.DrawRectangle(p.X, p.Y, 1, 1)
	r.dc.Fill()
}

func (r *RasterContext) FillTriangle(a, b, c Point, col color.Color) {
	r.dc.SetColor(col)
	r.dc.MoveTo(a.X, a.Y)
	r.dc.LineTo(b.X, b.Y)
	r.dc.LineTo(c.X, c.Y)
	r.dc.ClosePath()
	r.dc.Fill()
}

func (r *RasterContext) FillSquare(topLeft Point, side float64, col color.Color) {
	r.dc.SetColor(col)
	r.dc.DrawRectangle(topLeft.X, topLeft.Y, side, side)
	r.dc.Fill()
}

func (r *RasterContext) Push() {
	r.dc.Push()
}

// Pop restores the last pushed transform. Calls must balance Push.
func (r *RasterContext) Pop() {
	r.dc.Pop()
}

func (r *RasterContext) Translate(dx, dy float64) {
	r.dc.Translate(dx, dy)
}

// Rotate turns the frame by angle radians, clockwise on screen.
func (r *RasterContext) Rotate(angle float64) {
	r.dc.Rotate(angle)
}

func (r *RasterContext) Scale(sx, sy float64) {
	r.dc.Scale(sx, sy)
}

// Image returns the live raster; it changes as more is drawn.
func (r *RasterContext) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the raster as PNG.
func (r *RasterContext) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}
