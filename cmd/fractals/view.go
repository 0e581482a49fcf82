package main

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/scottkirkwood/fractals"
	"github.com/scottkirkwood/fractals/project"
	"github.com/scottkirkwood/fractals/render"
)

// fernFrameRate is how often the window asks the fern for more points.
const fernFrameRate = 30

func viewCmd(a *app) *cobra.Command {
	var (
		f      drawFlags
		out    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Preview fractals in a window",
		Long: `Preview fractals in a window.

Keys:
  Left/Right  previous/next variant
  Up/Down     previous/next family
  Space       pause or resume the fern
  S           export the output
  P           save a project file
  Esc, Q      quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			d, err := f.newDriver(cmd, a.cfg)
			if err != nil {
				return err
			}
			if out == "" {
				out = a.cfg.OutputDir
			}
			v := &viewer{
				d:      d,
				out:    out,
				format: format,
				w:      cmd.OutOrStdout(),
			}
			winSize := image.Point{a.cfg.DisplayWidth, a.cfg.DisplayHeight}
			var runErr error
			driver.Main(func(s screen.Screen) {
				runErr = v.run(s, winSize)
			})
			return runErr
		},
	}

	f.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "folder for S and P (default output_dir from the config)")
	cmd.Flags().StringVar(&format, "format", "png", "format S exports: png, bmp, tiff, svg or pdf")
	return cmd
}

type viewer struct {
	d      *render.Driver
	out    string
	format string
	w      io.Writer
	// animate is read by the ticker goroutine.
	animate atomic.Bool
}

func (v *viewer) run(s screen.Screen, winSize image.Point) error {
	// Keep the window on screen for large displays.
	winSize.X = fractals.Clamp(winSize.X, 1, 1000)
	winSize.Y = fractals.Clamp(winSize.Y, 1, 768)

	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  winSize.X,
		Height: winSize.Y,
	})
	if err != nil {
		return err
	}
	defer w.Release()

	b, err := s.NewBuffer(winSize)
	if err != nil {
		return err
	}
	defer func() { b.Release() }()

	// Runs before w.Release.
	defer startTicker(time.Second/fernFrameRate, &v.animate, func() { w.Send(paint.Event{}) })()

	v.updateAnimate()
	for {
		switch e := w.NextEvent().(type) {
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			if quit := v.key(e.Code); quit {
				return nil
			}
			v.updateAnimate()
			w.Send(paint.Event{})

		case paint.Event:
			v.redraw()
			dst := b.RGBA()
			draw.Draw(dst, dst.Bounds(), image.Black, image.Point{}, draw.Src)
			v.d.Blit(dst)
			w.Upload(image.Point{}, b, b.Bounds())
			w.Publish()

		case size.Event:
			if e.WidthPx == 0 || e.HeightPx == 0 || e.Size() == b.Size() {
				continue
			}
			nb, err := s.NewBuffer(e.Size())
			if err != nil {
				return err
			}
			b.Release()
			b = nb
			w.Send(paint.Event{})

		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}

		case error:
			return fmt.Errorf("screen error: %w", e)
		}
	}
}

// key handles a key press and reports whether to quit.
func (v *viewer) key(code key.Code) bool {
	switch code {
	case key.CodeEscape, key.CodeQ:
		return true
	case key.CodeRightArrow, key.CodeLeftArrow:
		step := 1
		if code == key.CodeLeftArrow {
			step = -1
		}
		p := v.d.Params()
		p.CycleVariant(step)
		if err := v.d.SetParams(p); err != nil {
			fmt.Fprintf(v.w, "Err: %v\n", err)
		}
	case key.CodeDownArrow, key.CodeUpArrow:
		step := 1
		if code == key.CodeUpArrow {
			step = -1
		}
		n := len(fractals.Families)
		v.d.SelectFamily(fractals.Families[((int(v.d.Family())+step)%n+n)%n])
	case key.CodeSpacebar:
		v.d.ToggleFern()
	case key.CodeS:
		fname, err := v.d.Export(v.out, v.format)
		if err != nil {
			fmt.Fprintf(v.w, "Err: %v\n", err)
			break
		}
		fmt.Fprintf(v.w, "Saved to %s\n", fname)
	case key.CodeP:
		fname := filepath.Join(v.out, project.FileName(v.d.Family()))
		if err := project.SaveFile(fname, v.d.Snapshot()); err != nil {
			fmt.Fprintf(v.w, "Err: %v\n", err)
			break
		}
		fmt.Fprintf(v.w, "Saved to %s\n", fname)
	}
	return false
}

func (v *viewer) updateAnimate() {
	v.animate.Store(v.d.Family() == fractals.Fern && !v.d.Params().Fern.Paused)
}

// redraw regenerates when something changed; the running fern grows on
// every frame.
func (v *viewer) redraw() {
	if !v.d.Dirty() && !v.animate.Load() {
		return
	}
	if err := v.d.Redraw(); err != nil {
		fmt.Fprintf(v.w, "Err: %v\n", err)
	}
}

// startTicker calls send every period while animate is set. The returned
// stop function does not return until the ticker goroutine has exited, so
// send is never called after it.
func startTicker(period time.Duration, animate *atomic.Bool, send func()) (stop func()) {
	var wg sync.WaitGroup
	done := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		t := time.NewTicker(period)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if animate.Load() {
					send()
				}
			}
		}
	}()
	return func() {
		close(done)
		wg.Wait()
	}
}
