package fractals

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/draw"
)

func TestFitRect(t *testing.T) {
	tests := []struct {
		src        image.Rectangle
		canW, canH int
		want       image.Rectangle
	}{
		{image.Rect(0, 0, 2000, 1000), 1000, 1000, image.Rect(0, 250, 1000, 750)},
		{image.Rect(0, 0, 1000, 2000), 1000, 1000, image.Rect(250, 0, 750, 1000)},
		{image.Rect(0, 0, 400, 300), 800, 600, image.Rect(0, 0, 800, 600)},
		{image.Rect(0, 0, 0, 0), 800, 600, image.Rectangle{}},
	}
	for _, tt := range tests {
		if got := FitRect(tt.src, tt.canW, tt.canH); got != tt.want {
			t.Errorf("FitRect(%v, %d, %d) = %v, want %v", tt.src, tt.canW, tt.canH, got, tt.want)
		}
	}
}

func TestBlit(t *testing.T) {
	r := NewRasterContext(200, 100)
	r.Clear(color.White)
	dst := image.NewRGBA(image.Rect(0, 0, 50, 50))
	got := Blit(dst, r.Image())
	if want := image.Rect(0, 12, 50, 37); got != want {
		t.Fatalf("Blit painted %v, want %v", got, want)
	}
	if c := dst.RGBAAt(25, 25); c.R < 0xf0 {
		t.Errorf("expected white in the middle, got %v", c)
	}
	if c := dst.RGBAAt(25, 2); c.A != 0 {
		t.Errorf("expected letterbox untouched, got %v", c)
	}
	if blitScaler != draw.ApproxBiLinear {
		t.Errorf("preview blit should use the approximate bilinear scaler")
	}
}

func TestRasterDraws(t *testing.T) {
	r := NewRasterContext(20, 20)
	r.Clear(color.Black)
	r.Push()
	r.Translate(10, 0)
	r.DrawLine(Pt(0, 0), Pt(0, 20), 2, color.White)
	r.Pop()
	r.FillSquare(Pt(0, 15), 4, color.White)

	img := r.Image().(*image.RGBA)
	if c := img.RGBAAt(10, 10); c.R == 0 {
		t.Errorf("expected the translated line at x=10")
	}
	if c := img.RGBAAt(2, 17); c.R != 0xff {
		t.Errorf("expected the square at (2, 17), got %v", c)
	}
	if c := img.RGBAAt(2, 2); c.R != 0 {
		t.Errorf("expected background at (2, 2), got %v", c)
	}

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("expected a PNG header")
	}
}

func TestSafeExport(t *testing.T) {
	dir := t.TempDir()
	r := NewRasterContext(8, 8)
	r.Clear(color.White)
	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		fname := filepath.Join(dir, "out", "Tree"+ext)
		if err := SafeExport(r, fname); err != nil {
			t.Fatalf("SafeExport(%s): %v", ext, err)
		}
		if fi, err := os.Stat(fname); err != nil || fi.Size() == 0 {
			t.Errorf("expected a non-empty %s, err=%v", fname, err)
		}
	}
	if err := SafeExport(r, filepath.Join(dir, "Tree.svg")); err == nil {
		t.Errorf("expected a raster surface to refuse svg")
	}
	if err := SafeExport(r, filepath.Join(dir, "Tree.gif")); err == nil {
		t.Errorf("expected an unsupported format error")
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "fractals.*"))
	if len(matches) != 0 {
		t.Errorf("temp files left behind: %v", matches)
	}
}

func TestSafeExportVector(t *testing.T) {
	dir := t.TempDir()
	v := NewContext(40, 30)
	v.Clear(color.Black)
	v.DrawLine(Pt(0, 0), Pt(40, 30), 1, color.White)
	for _, ext := range []string{".svg", ".pdf", ".png"} {
		fname := filepath.Join(dir, "Koch"+ext)
		if err := SafeExport(v, fname); err != nil {
			t.Fatalf("SafeExport(%s): %v", ext, err)
		}
	}
	b, err := os.ReadFile(filepath.Join(dir, "Koch.png"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("\x89PNG")) {
		t.Errorf("expected the vector surface rasterized to PNG")
	}
	if err := SafeExport(v, filepath.Join(dir, "Koch.bmp")); err == nil {
		t.Errorf("expected a vector surface to refuse bmp")
	}
}
