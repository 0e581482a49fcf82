package main

import (
	"bytes"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/scottkirkwood/fractals"
	"github.com/scottkirkwood/fractals/config"
	"github.com/scottkirkwood/fractals/project"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "render", "--family", "Koch", "--variant", "Snowflake", "--width", "320", "--out", dir)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	fname := filepath.Join(dir, "Koch.png")
	if want := "Saved to " + fname + "\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	f, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 320 || cfg.Height != 180 {
		t.Errorf("size = %dx%d, want 320x180", cfg.Width, cfg.Height)
	}
}

func TestRenderFernPrintsSeed(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "render", "--family", "Barnsley fern", "--frames", "2", "--seed", "1f",
		"--width", "200", "--format", "svg", "--out", dir)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Seed 1f\n") {
		t.Errorf("output %q has no seed", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "Barnsley fern.svg")); err != nil {
		t.Error(err)
	}
}

func TestRenderRejects(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"family", []string{"--family", "Mandelbrot"}},
		{"variant", []string{"--variant", "Variation 9"}},
		{"seed", []string{"--seed", "zz"}},
		{"color", []string{"--color", "white"}},
		{"length", []string{"--length=-3"}},
		{"width", []string{"--width", "wide"}},
		{"format", []string{"--format", "gif"}},
		{"frames", []string{"--frames", "0"}},
	}
	for _, tc := range tests {
		args := append([]string{"render", "--out", dir}, tc.args...)
		if _, err := run(t, args...); err == nil {
			t.Errorf("%s: render %v succeeded", tc.name, tc.args)
		}
	}
}

func TestProjectSaveShow(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "s.json")
	out, err := run(t, "project", "save", "--family", "Sierpiński", "--iterations", "3",
		"--color", "#ff8000", "--file", fname)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if out != "Saved to "+fname+"\n" {
		t.Errorf("save output = %q", out)
	}

	out, err = run(t, "project", "show", fname)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{
		"Family:     Sierpiński\n",
		"Variant:    Triangle\n",
		"Iterations: 3\n",
		"Color:      #ff8000\n",
		"Size:       2560x1440",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("show output %q lacks %q", out, want)
		}
	}
}

func TestProjectShowRejectsUnknown(t *testing.T) {
	if _, err := run(t, "project", "show", "../../project/testdata/unknown.json"); err == nil {
		t.Error("show unknown.json succeeded")
	}
}

func TestWatcherHandle(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	doc := &project.Document{
		SelectedFractal:  fractals.Tree.String(),
		SelectedTreeType: "Variation 1",
		Color:            "#00ff00",
		CurrentGraphicsX: 160,
		CurrentGraphicsY: 90,
		OriginalRatio:    16.0 / 9,
		MultiplyFactor:   0.125,
		BranchLength:     project.Float(150),
		Angle:            project.Float(0.6),
		StrokeWeight:     project.Float(2),
	}
	fname := filepath.Join(in, "mine.json")
	if err := project.SaveFile(fname, doc); err != nil {
		t.Fatal(err)
	}

	var log bytes.Buffer
	pw := &projectWatcher{
		cfg:    config.Default(),
		seed:   fractals.NewSeed(1),
		out:    out,
		format: "png",
		frames: 1,
		w:      &log,
		crc:    make(map[string]uint64),
	}
	pw.handle(fname)
	want := "Saved to " + filepath.Join(out, "Tree.png") + "\n"
	if log.String() != want {
		t.Fatalf("first handle logged %q, want %q", log.String(), want)
	}

	log.Reset()
	pw.handle(fname)
	if log.Len() != 0 {
		t.Errorf("unchanged file rendered again: %q", log.String())
	}

	for _, name := range []string{"4913", "notes.txt"} {
		other := filepath.Join(in, name)
		if err := os.WriteFile(other, []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
		pw.handle(other)
	}
	if log.Len() != 0 {
		t.Errorf("non-project files handled: %q", log.String())
	}

	bad := filepath.Join(in, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"selectedFractal": "Mandelbrot"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	pw.handle(bad)
	if !strings.HasPrefix(log.String(), "Skipping "+bad) {
		t.Errorf("bad project logged %q", log.String())
	}
}

func TestCheckFormat(t *testing.T) {
	for _, f := range []string{"png", "PNG", ".svg", "pdf", "bmp", "tiff"} {
		if err := checkFormat(f); err != nil {
			t.Errorf("checkFormat(%q): %v", f, err)
		}
	}
	for _, f := range []string{"gif", "jpeg", ""} {
		if err := checkFormat(f); !fractals.IsKind(err, fractals.KindInvalidParameter) {
			t.Errorf("checkFormat(%q): expected invalid parameter, got %v", f, err)
		}
	}
}

func TestTickerStops(t *testing.T) {
	var animate atomic.Bool
	animate.Store(true)
	var sends atomic.Int64
	stop := startTicker(time.Millisecond, &animate, func() { sends.Add(1) })
	for sends.Load() == 0 {
		time.Sleep(time.Millisecond)
	}
	stop()
	after := sends.Load()
	time.Sleep(20 * time.Millisecond)
	if got := sends.Load(); got != after {
		t.Errorf("ticker sent %d events after stop", got-after)
	}
}

func TestTickerIdleWhenNotAnimating(t *testing.T) {
	var animate atomic.Bool
	var sends atomic.Int64
	stop := startTicker(time.Millisecond, &animate, func() { sends.Add(1) })
	time.Sleep(20 * time.Millisecond)
	stop()
	if got := sends.Load(); got != 0 {
		t.Errorf("paused ticker sent %d events", got)
	}
}
