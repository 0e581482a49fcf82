package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/scottkirkwood/fractals"
)

// MaxDimension caps both sides of the output raster.
const MaxDimension = 8000

// Resolution is the size of the output raster. Ratio is the aspect ratio of
// the display the session started with and is kept through every resize.
// Factor is the number of output pixels per display pixel.
type Resolution struct {
	Width, Height int
	Ratio         float64
	Factor        float64
}

// NewResolution sizes the output at factor times the display.
func NewResolution(displayW, displayH int, factor float64) Resolution {
	w := math.Round(float64(displayW) * factor)
	h := math.Round(float64(displayH) * factor)
	r := Resolution{Width: int(w), Height: int(h), Ratio: w / h, Factor: factor}
	if r.Width > MaxDimension || r.Height > MaxDimension {
		r, _ = r.WithWidth(w, displayW)
	}
	return r
}

// clampDim pulls v into [1, MaxDimension] and reports whether it had to.
func clampDim(v float64) (int, bool) {
	c := fractals.Clamp(v, 1, MaxDimension)
	return int(c), c != v
}

// WithWidth returns the resolution for a requested width, keeping Ratio.
// clamped reports that the request was outside [1, MaxDimension] on either
// side and had to be pulled back.
func (r Resolution) WithWidth(v float64, displayW int) (res Resolution, clamped bool) {
	w, clamped := clampDim(math.Ceil(v))
	h, hc := clampDim(math.Round(float64(w) / r.Ratio))
	if hc {
		clamped = true
		w, _ = clampDim(math.Round(float64(h) * r.Ratio))
	}
	r.Width, r.Height = w, h
	r.Factor = float64(w) / float64(displayW)
	return r, clamped
}

// WithHeight is WithWidth for a requested height.
func (r Resolution) WithHeight(v float64, displayH int) (res Resolution, clamped bool) {
	h, clamped := clampDim(math.Ceil(v))
	w, wc := clampDim(math.Round(float64(h) * r.Ratio))
	if wc {
		clamped = true
		h, _ = clampDim(math.Round(float64(w) / r.Ratio))
	}
	r.Width, r.Height = w, h
	r.Factor = float64(h) / float64(displayH)
	return r, clamped
}

// parseDimension reads a size typed into a text field.
func parseDimension(op, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &fractals.OpError{Op: op, Kind: fractals.KindInvalidParameter, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fractals.Errorf(op, fractals.KindInvalidParameter, "size %q is not finite", s)
	}
	return v, nil
}
