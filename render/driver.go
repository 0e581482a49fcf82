// Package render owns the output surface and the active fractal. It turns
// parameter snapshots into frames, keeps the output resolution in step with
// the display, and exports or persists what is on screen.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/scottkirkwood/fractals"
	"github.com/scottkirkwood/fractals/config"
	"github.com/scottkirkwood/fractals/fern"
)

// SurfaceFactory creates the output surface whenever the size or family
// changes.
type SurfaceFactory func(width, height int) fractals.Surface

// RasterSurface is the default factory.
func RasterSurface(width, height int) fractals.Surface {
	return fractals.NewRasterContext(width, height)
}

// Option configures a Driver.
type Option func(*Driver)

// WithSurfaceFactory replaces the gg raster surface.
func WithSurfaceFactory(f SurfaceFactory) Option {
	return func(d *Driver) {
		d.newSurface = f
	}
}

// WithSeed fixes the random source of the fern.
func WithSeed(s fractals.Seed) Option {
	return func(d *Driver) {
		d.seed = s
	}
}

// maxRecordedDots bounds the fern points kept for vector export.
const maxRecordedDots = 1 << 20

// Driver is not safe for concurrent use; redraws happen on one goroutine.
type Driver struct {
	displayW, displayH int
	background         color.NRGBA
	newSurface         SurfaceFactory
	seed               fractals.Seed
	rng                *rand.Rand

	params  Params
	res     Resolution
	surface fractals.Surface

	// painted holds the frames drawn since the last clear so they can be
	// replayed onto another surface.
	painted     []frame
	paintedDots int
	replayFull  bool

	fern        fern.State
	fernVariant fern.Variant

	drawing bool
	dirty   bool
}

// New creates a driver for the display size in cfg, with the tree selected
// and nothing drawn yet.
func New(cfg config.Config, opts ...Option) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	params, err := DefaultParams(cfg)
	if err != nil {
		return nil, err
	}
	bg, err := fractals.ParseHex(cfg.Background)
	if err != nil {
		return nil, &fractals.OpError{Op: "render.new", Kind: fractals.KindInvalidParameter, Err: err}
	}
	if params.Fern.Points == 0 {
		params.Fern.Points = DefaultFernPoints
	}
	seed, err := fractals.Init("")
	if err != nil {
		return nil, err
	}

	d := &Driver{
		displayW:   cfg.DisplayWidth,
		displayH:   cfg.DisplayHeight,
		background: bg,
		newSurface: RasterSurface,
		seed:       seed,
		params:     params,
		res:        NewResolution(cfg.DisplayWidth, cfg.DisplayHeight, cfg.MultiplyFactor),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.rng = d.seed.Rand()
	d.resetFamily()
	fractals.Logger().Debug("driver created", "width", d.res.Width, "height", d.res.Height, "seed", d.seed)
	return d, nil
}

// resetFamily drops everything tied to the current drawing: the surface,
// the replay list and the fern attractor.
func (d *Driver) resetFamily() {
	d.surface = d.newSurface(d.res.Width, d.res.Height)
	d.surface.Clear(d.background)
	d.clearReplay()
	d.fern = fern.State{}
	d.fernVariant = d.params.Fern.Variant
	d.dirty = true
}

// Params returns a copy of the current parameters.
func (d *Driver) Params() Params { return d.params }

// Resolution returns the output size.
func (d *Driver) Resolution() Resolution { return d.res }

// Family is the selected family.
func (d *Driver) Family() fractals.Family { return d.params.Family }

// Seed is the fern seed, printable for --seed.
func (d *Driver) Seed() fractals.Seed { return d.seed }

// FernState is the running point of the fern attractor.
func (d *Driver) FernState() fern.State { return d.fern }

// Dirty reports that a redraw was requested but has not happened yet.
func (d *Driver) Dirty() bool { return d.dirty }

// SetParams replaces the parameter snapshot. A new family goes through
// SelectFamily. Invalid parameters are rejected and the old ones kept.
func (d *Driver) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		fractals.Logger().Warn("parameters rejected", "err", err)
		return err
	}
	p.clamp()
	family := p.Family
	p.Family = d.params.Family
	d.params = p
	d.dirty = true
	if family != d.params.Family {
		d.SelectFamily(family)
	}
	return nil
}

// SelectFamily switches family and starts from a fresh surface. The fern
// always restarts running.
func (d *Driver) SelectFamily(f fractals.Family) {
	if !f.Valid() {
		fractals.Logger().Warn("unknown family ignored", "family", int(f))
		return
	}
	d.params.Family = f
	d.params.Fern.Paused = false
	d.resetFamily()
	fractals.Logger().Info("family selected", "family", f)
}

// ToggleFern pauses or resumes adding fern points and returns true when
// paused.
func (d *Driver) ToggleFern() bool {
	d.params.Fern.Paused = !d.params.Fern.Paused
	return d.params.Fern.Paused
}

// SetWidth takes the text of the width field. The height follows the
// original aspect ratio. Sizes past MaxDimension or below 1 are clamped;
// text that is not a number is rejected and the old size kept.
func (d *Driver) SetWidth(s string) error {
	v, err := parseDimension("render.set_width", s)
	if err != nil {
		fractals.Logger().Warn("width ignored", "input", s, "err", err)
		return err
	}
	res, clamped := d.res.WithWidth(v, d.displayW)
	if clamped {
		d.logClamped("render.set_width", s, res)
	}
	d.resize(res)
	return nil
}

// SetHeight is SetWidth for the height field.
func (d *Driver) SetHeight(s string) error {
	v, err := parseDimension("render.set_height", s)
	if err != nil {
		fractals.Logger().Warn("height ignored", "input", s, "err", err)
		return err
	}
	res, clamped := d.res.WithHeight(v, d.displayH)
	if clamped {
		d.logClamped("render.set_height", s, res)
	}
	d.resize(res)
	return nil
}

func (d *Driver) logClamped(op, input string, res Resolution) {
	err := fractals.Errorf(op, fractals.KindResolutionOutOfRange, "%q outside [1, %d]", input, MaxDimension)
	fractals.Logger().Warn("resolution clamped", "width", res.Width, "height", res.Height, "err", err)
}

func (d *Driver) resize(res Resolution) {
	size := res.Width != d.res.Width || res.Height != d.res.Height
	d.res = res
	d.dirty = true
	if !size {
		return
	}
	// A new surface starts blank; the fern keeps its running point.
	d.surface = d.newSurface(res.Width, res.Height)
	d.surface.Clear(d.background)
	d.clearReplay()
}

// Redraw generates the next frame of the selected family and paints it.
// Every family but the fern clears first; the fern adds to what is there.
// If generation fails the previous frame stays on the surface and the error
// is returned. A Redraw called while one is running, say from inside a
// surface, is dropped and leaves the driver dirty.
func (d *Driver) Redraw() error {
	if d.drawing {
		d.dirty = true
		fractals.Logger().Warn("redraw requested while drawing, dropped", "family", d.params.Family)
		return nil
	}
	d.drawing = true
	defer func() { d.drawing = false }()
	d.dirty = false

	gen, ok := generators[d.params.Family]
	if !ok {
		return fractals.Errorf("render.redraw", fractals.KindInvalidParameter, "no generator for %v", d.params.Family)
	}
	fr, err := gen(d)
	if err != nil {
		fractals.Logger().Warn("generation failed, keeping last frame", "family", d.params.Family, "err", err)
		return err
	}
	if !fr.keep {
		d.surface.Clear(d.background)
		d.clearReplay()
	}
	paint(d.surface, fr)
	d.record(fr)
	fractals.Logger().Debug("redraw", "family", d.params.Family, "variant", d.params.Variant(), "primitives", len(fr.prims))
	return nil
}

func paint(s fractals.Surface, fr frame) {
	s.Push()
	s.Translate(fr.offset.X, fr.offset.Y)
	fractals.Paint(s, fr.prims, fr.col)
	s.Pop()
}

func (d *Driver) clearReplay() {
	d.painted = nil
	d.paintedDots = 0
	d.replayFull = false
}

func (d *Driver) record(fr frame) {
	if len(fr.prims) == 0 || d.replayFull {
		return
	}
	if d.paintedDots+len(fr.prims) > maxRecordedDots {
		fractals.Logger().Info("replay list full, vector export keeps the first points", "points", d.paintedDots)
		d.replayFull = true
		return
	}
	d.painted = append(d.painted, fr)
	d.paintedDots += len(fr.prims)
}

// replay paints the frames on the current surface onto s.
func (d *Driver) replay(s fractals.Surface) fractals.Surface {
	s.Clear(d.background)
	for _, fr := range d.painted {
		paint(s, fr)
	}
	return s
}

// Image returns the live output raster, or nil if the surface is not a
// raster.
func (d *Driver) Image() image.Image {
	if r, ok := d.surface.(interface{ Image() image.Image }); ok {
		return r.Image()
	}
	return nil
}

// Blit scales the output into dst, letterboxed, and returns the covered
// rectangle.
func (d *Driver) Blit(dst draw.Image) image.Rectangle {
	img := d.Image()
	if img == nil {
		return image.Rectangle{}
	}
	return fractals.Blit(dst, img)
}

// Export writes the output as "<family>.<ext>" in dir and returns the file
// name. Vector formats replay the frames into a vector surface.
func (d *Driver) Export(dir, ext string) (string, error) {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	fname := filepath.Join(dir, d.params.Family.String()+ext)

	s := d.surface
	switch ext {
	case ".svg", ".pdf":
		if _, ok := s.(*fractals.Context); !ok {
			s = d.replay(fractals.NewContext(d.res.Width, d.res.Height))
		}
	default:
		if d.Image() == nil {
			s = d.replay(fractals.NewRasterContext(d.res.Width, d.res.Height))
		}
	}
	if err := fractals.SafeExport(s, fname); err != nil {
		return "", err
	}
	return fname, nil
}
