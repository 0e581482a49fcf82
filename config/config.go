// Package config loads the renderer defaults from an optional YAML file.
package config

import (
	"errors"
	"io/fs"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/scottkirkwood/fractals"
)

// FileName is the config file looked up by the CLI when --config is unset.
const FileName = "fractals.yaml"

// Config holds the display size, the output scaling and the starting
// parameters of every family. Variant names use the menu labels.
type Config struct {
	DisplayWidth   int
	DisplayHeight  int
	MultiplyFactor float64
	Background     string
	FernPoints     int
	OutputDir      string

	Tree       TreeDefaults
	Koch       KochDefaults
	Fern       FernDefaults
	Sierpinski SierpinskiDefaults
}

type TreeDefaults struct {
	Variant      string
	Length       float64
	Angle        float64
	StrokeWeight float64
	Color        string
}

type KochDefaults struct {
	Variant      string
	Iterations   int
	Length       float64
	StrokeWeight float64
	Color        string
}

type FernDefaults struct {
	Variant string
	Color   string
}

type SierpinskiDefaults struct {
	Variant string
	// Iterations counts levels from 1 like s_iterations in project files:
	// 1 draws the bare figure.
	Iterations int
	Length     float64
	Color      string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DisplayWidth:   1280,
		DisplayHeight:  720,
		MultiplyFactor: 2,
		Background:     "#000000",
		FernPoints:     1000,
		OutputDir:      ".",
		Tree: TreeDefaults{
			Variant:      "Basic",
			Length:       150,
			Angle:        math.Pi / 4,
			StrokeWeight: 2,
			Color:        "#ffffff",
		},
		Koch: KochDefaults{
			Variant:      "Line",
			Iterations:   2,
			Length:       150,
			StrokeWeight: 2,
			Color:        "#ffffff",
		},
		Fern: FernDefaults{
			Variant: "Classic",
			Color:   "#ffffff",
		},
		Sierpinski: SierpinskiDefaults{
			Variant:    "Triangle",
			Iterations: 2,
			Length:     500,
			Color:      "#ffffff",
		},
	}
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	const op = "config.load"
	cfg := Default()

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		fractals.Logger().Debug("no config file, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, &fractals.OpError{Op: op, Kind: fractals.KindInvalidParameter, Path: path, Err: err}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &fractals.OpError{Op: op, Kind: fractals.KindInvalidParameter, Path: path, Err: err}
	}
	y.apply(&cfg)

	if err := cfg.Validate(); err != nil {
		if oe, ok := err.(*fractals.OpError); ok {
			oe.Path = path
		}
		return Default(), err
	}
	return cfg, nil
}

// Validate rejects sizes and colours the renderer cannot use.
func (c Config) Validate() error {
	const op = "config.validate"
	switch {
	case c.DisplayWidth <= 0 || c.DisplayHeight <= 0:
		return fractals.Errorf(op, fractals.KindInvalidParameter, "display size %dx%d", c.DisplayWidth, c.DisplayHeight)
	case !(c.MultiplyFactor > 0):
		return fractals.Errorf(op, fractals.KindInvalidParameter, "multiply_factor %v must be positive", c.MultiplyFactor)
	case c.FernPoints < 0:
		return fractals.Errorf(op, fractals.KindInvalidParameter, "fern points %d < 0", c.FernPoints)
	case c.Sierpinski.Iterations < 1:
		return fractals.Errorf(op, fractals.KindInvalidParameter, "sierpinski iterations %d < 1", c.Sierpinski.Iterations)
	}
	for _, col := range []string{c.Background, c.Tree.Color, c.Koch.Color, c.Fern.Color, c.Sierpinski.Color} {
		if _, err := fractals.ParseHex(col); err != nil {
			return fractals.Errorf(op, fractals.KindInvalidParameter, "color %q: %v", col, err)
		}
	}
	return nil
}

type yamlConfig struct {
	Display struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"display"`
	MultiplyFactor float64 `yaml:"multiply_factor"`
	Background     string  `yaml:"background"`
	FernPoints     *int    `yaml:"fern_points"`
	OutputDir      string  `yaml:"output_dir"`

	Tree struct {
		Variant      string   `yaml:"variant"`
		Length       float64  `yaml:"length"`
		Angle        *float64 `yaml:"angle"`
		StrokeWeight float64  `yaml:"stroke_weight"`
		Color        string   `yaml:"color"`
	} `yaml:"tree"`

	Koch struct {
		Variant      string  `yaml:"variant"`
		Iterations   *int    `yaml:"iterations"`
		Length       float64 `yaml:"length"`
		StrokeWeight float64 `yaml:"stroke_weight"`
		Color        string  `yaml:"color"`
	} `yaml:"koch"`

	Fern struct {
		Variant string `yaml:"variant"`
		Color   string `yaml:"color"`
	} `yaml:"fern"`

	Sierpinski struct {
		Variant    string  `yaml:"variant"`
		Iterations *int    `yaml:"iterations"`
		Length     float64 `yaml:"length"`
		Color      string  `yaml:"color"`
	} `yaml:"sierpinski"`
}

// apply copies every field that was set in the file.
func (y *yamlConfig) apply(cfg *Config) {
	setInt := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}
	setFloat := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	setStr := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	setInt(&cfg.DisplayWidth, y.Display.Width)
	setInt(&cfg.DisplayHeight, y.Display.Height)
	setFloat(&cfg.MultiplyFactor, y.MultiplyFactor)
	setStr(&cfg.Background, y.Background)
	if y.FernPoints != nil {
		cfg.FernPoints = *y.FernPoints
	}
	setStr(&cfg.OutputDir, y.OutputDir)

	setStr(&cfg.Tree.Variant, y.Tree.Variant)
	setFloat(&cfg.Tree.Length, y.Tree.Length)
	if y.Tree.Angle != nil {
		cfg.Tree.Angle = *y.Tree.Angle
	}
	setFloat(&cfg.Tree.StrokeWeight, y.Tree.StrokeWeight)
	setStr(&cfg.Tree.Color, y.Tree.Color)

	setStr(&cfg.Koch.Variant, y.Koch.Variant)
	if y.Koch.Iterations != nil {
		cfg.Koch.Iterations = *y.Koch.Iterations
	}
	setFloat(&cfg.Koch.Length, y.Koch.Length)
	setFloat(&cfg.Koch.StrokeWeight, y.Koch.StrokeWeight)
	setStr(&cfg.Koch.Color, y.Koch.Color)

	setStr(&cfg.Fern.Variant, y.Fern.Variant)
	setStr(&cfg.Fern.Color, y.Fern.Color)

	setStr(&cfg.Sierpinski.Variant, y.Sierpinski.Variant)
	if y.Sierpinski.Iterations != nil {
		cfg.Sierpinski.Iterations = *y.Sierpinski.Iterations
	}
	setFloat(&cfg.Sierpinski.Length, y.Sierpinski.Length)
	setStr(&cfg.Sierpinski.Color, y.Sierpinski.Color)
}
