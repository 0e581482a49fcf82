package fractals

import (
	"image/color"
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/rasterizer"
	"github.com/tdewolff/canvas/svg"
)

// Context is a vector Surface backed by tdewolff/canvas. It records the same
// primitive stream as RasterContext so it can be written as SVG or PDF.
// One surface unit is one canvas millimetre.
type Context struct {
	c             *canvas.Canvas
	ctx           *canvas.Context
	width, height int
}

// NewContext creates a vector surface of the given size with a y-down frame.
func NewContext(width, height int) *Context {
	ctx := &Context{
		c:      canvas.New(float64(width), float64(height)),
		width:  width,
		height: height,
	}
	ctx.ctx = canvas.NewContext(ctx.c)
	ctx.resetView()
	return ctx
}

// canvas is y-up; flip it so generators see the same frame as the raster.
func (ctx *Context) resetView() {
	ctx.ctx.SetView(canvas.Identity.Translate(0, float64(ctx.height)).Scale(1, -1))
}

func (ctx *Context) Size() (int, int) {
	return ctx.width, ctx.height
}

// WritePNG writes to a PNG file
func (ctx *Context) WritePNG(fname string) error {
	return ctx.c.WriteFile(fname, rasterizer.PNGWriter(1.0))
}

// WriteSVG writes to an SVG file
func (ctx *Context) WriteSVG(fname string) error {
	return ctx.c.WriteFile(fname, svg.Writer)
}

// WritePDF writes to a PDF file
func (ctx *Context) WritePDF(fname string) error {
	return ctx.c.WriteFile(fname, pdf.Writer)
}

func (ctx *Context) Push() {
	ctx.ctx.Push()
}

// Pop restores the last pushed draw state and uses that as the current draw state. If there are no
// states on the stack, this will do nothing.
func (ctx *Context) Pop() {
	ctx.ctx.Pop()
}

func (ctx *Context) Translate(dx, dy float64) {
	ctx.ctx.ComposeView(canvas.Identity.Translate(dx, dy))
}

// Rotate takes radians like the raster surface; canvas wants degrees.
func (ctx *Context) Rotate(angle float64) {
	ctx.ctx.ComposeView(canvas.Identity.Rotate(angle * 180 / math.Pi))
}

func (ctx *Context) Scale(sx, sy float64) {
	ctx.ctx.ComposeView(canvas.Identity.Scale(sx, sy))
}

// Clear empties the canvas and paints the background.
func (ctx *Context) Clear(bg color.Color) {
	ctx.c.Reset()
	ctx.ctx.Push()
	ctx.resetView()
	ctx.FillSquare(Pt(0, 0), math.Max(float64(ctx.width), float64(ctx.height)), bg)
	ctx.ctx.Pop()
}

func (ctx *Context) DrawLine(a, b Point, weight float64, col color.Color) {
	ctx.ctx.SetStrokeColor(col)
	ctx.ctx.SetStrokeWidth(weight)
	ctx.ctx.MoveTo(a.X, a.Y)
	ctx.ctx.LineTo(b.X, b.Y)
	ctx.ctx.Stroke()
}

// DrawPoint draws a 1 unit square at point
func (ctx *Context) DrawPoint(p Point, col color.Color) {
	ctx.FillSquare(p, 1, col)
}

func (ctx *Context) FillTriangle(a, b, c Point, col color.Color) {
	ctx.ctx.SetFillColor(col)
	ctx.ctx.MoveTo(a.X, a.Y)
	ctx.ctx.LineTo(b.X, b.Y)
	ctx.ctx.LineTo(c.X, c.Y)
	ctx.ctx.Close()
	ctx.ctx.Fill()
}

func (ctx *Context) FillSquare(topLeft Point, side float64, col color.Color) {
	ctx.ctx.SetFillColor(col)
	ctx.ctx.MoveTo(topLeft.X, topLeft.Y)
	ctx.ctx.LineTo(topLeft.X+side, topLeft.Y)
	ctx.ctx.LineTo(topLeft.X+side, topLeft.Y+side)
	ctx.ctx.LineTo(topLeft.X, topLeft.Y+side)
	ctx.ctx.Close()
	ctx.ctx.Fill()
}
