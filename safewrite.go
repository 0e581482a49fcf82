package fractals

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Formats lists the export extensions SafeExport understands.
var Formats = []string{".png", ".bmp", ".tiff", ".svg", ".pdf"}

type imager interface {
	Image() image.Image
}

// SafeExport writes the surface to fname, picking the encoder from the
// extension. Raster formats need a surface with an Image method, vector
// formats need a *Context. A *Context can also be rasterized to PNG.
func SafeExport(s Surface, fname string) error {
	ext := strings.ToLower(filepath.Ext(fname))
	var write func(string) error
	v, vector := s.(*Context)
	switch {
	case ext == ".png" && vector:
		write = v.WritePNG
	case ext == ".png" || ext == ".bmp" || ext == ".tif" || ext == ".tiff":
		r, ok := s.(imager)
		if !ok {
			return fmt.Errorf("%T cannot be written as %s", s, ext)
		}
		write = func(tmp string) error {
			f, err := os.Create(tmp)
			if err != nil {
				return err
			}
			if err := EncodeImage(f, r.Image(), ext); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		}
	case ext == ".svg" || ext == ".pdf":
		if !vector {
			return fmt.Errorf("%T cannot be written as %s", s, ext)
		}
		write = v.WriteSVG
		if ext == ".pdf" {
			write = v.WritePDF
		}
	default:
		return fmt.Errorf("unsupported file format %s", ext)
	}
	if err := SafeWrite(fname, write); err != nil {
		Logger().Warn("export failed", "path", fname, "err", err)
		return err
	}
	Logger().Info("exported", "path", fname)
	return nil
}

// EncodeImage writes img to w as png, bmp or tiff.
func EncodeImage(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		return encodePNG(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("unsupported raster format %s", ext)
}

// SafeWrite calls write with a temp file name in the destination folder and
// then renames the result over fname, so readers never see half a file.
func SafeWrite(fname string, write func(tmpName string) error) error {
	dir := filepath.Dir(fname)
	if err := MaybeCreateDir(dir); err != nil {
		return err
	}

	tmpfile, err := os.CreateTemp(dir, "fractals.*"+filepath.Ext(fname))
	if err != nil {
		return err
	}
	tmpName := tmpfile.Name()
	tmpfile.Close()

	if err := write(tmpName); err != nil {
		os.Remove(tmpName)
		return err
	}
	// Note: rename is only atomic because the temp file shares the folder
	if err := os.Rename(tmpName, fname); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Chmod(fname, 0664)
}

// MaybeCreateDir creates dir and its parents if missing.
func MaybeCreateDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
