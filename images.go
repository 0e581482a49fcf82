package fractals

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

func encodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// VpCenter inspects the canvas and image geometry, and determines where the
// origin of the image should be painted into the canvas.
// If the image is bigger than the canvas, this is always (0, 0).
// If the image is the same size, then it is also (0, 0).
// If a dimension of the image is smaller than the canvas, then:
// x = (canvas_width - image_width) / 2 and
// y = (canvas_height - image_height) / 2
func VpCenter(ximg image.Rectangle, canWidth, canHeight int) image.Point {
	xmargin, ymargin := 0, 0
	if ximg.Dx() < canWidth {
		xmargin = (canWidth - ximg.Dx()) / 2
	}
	if ximg.Dy() < canHeight {
		ymargin = (canHeight - ximg.Dy()) / 2
	}
	return image.Point{xmargin, ymargin}
}

// FitRect returns the largest rectangle with the aspect ratio of src that
// fits in a canWidth x canHeight viewport, centred with VpCenter.
func FitRect(src image.Rectangle, canWidth, canHeight int) image.Rectangle {
	if src.Dx() <= 0 || src.Dy() <= 0 || canWidth <= 0 || canHeight <= 0 {
		return image.Rectangle{}
	}
	w, h := canWidth, src.Dy()*canWidth/src.Dx()
	if h > canHeight {
		w, h = src.Dx()*canHeight/src.Dy(), canHeight
	}
	fit := image.Rect(0, 0, max(w, 1), max(h, 1))
	return fit.Add(VpCenter(fit, canWidth, canHeight))
}

// blitScaler downsamples for the preview, which blits up to 30 times a second
// from rasters as large as 8000x8000.
var blitScaler draw.Scaler = draw.ApproxBiLinear

// Blit scales src into dst keeping the aspect ratio, letterboxing the rest of
// dst untouched. It returns the rectangle that was painted.
func Blit(dst draw.Image, src image.Image) image.Rectangle {
	b := dst.Bounds()
	r := FitRect(src.Bounds(), b.Dx(), b.Dy()).Add(b.Min)
	if r.Empty() {
		return r
	}
	blitScaler.Scale(dst, r, src, src.Bounds(), draw.Src, nil)
	return r
}
