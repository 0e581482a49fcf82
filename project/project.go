// Package project reads and writes the JSON project documents that capture
// everything needed to regenerate a fractal: the family, its variant and
// sliders, the colour and the output resolution.
package project

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/scottkirkwood/fractals"
)

// Document is one saved project. Field names follow the files written by the
// original sketch, so old projects keep loading. Only the fields of the
// selected family are set.
type Document struct {
	SelectedFractal string `json:"selectedFractal"`
	Color           string `json:"color,omitempty"`

	// Tree
	SelectedTreeType string   `json:"selectedTreeType,omitempty"`
	BranchLength     *float64 `json:"branch_length,omitempty"`
	Angle            *float64 `json:"angle,omitempty"`
	StrokeWeight     *float64 `json:"stroke_weight,omitempty"`

	// Koch
	SelectedKochType string   `json:"selectedKochType,omitempty"`
	Iterations       *int     `json:"iterations,omitempty"`
	KochLength       *float64 `json:"koch_length,omitempty"`
	KochStrokeWeight *float64 `json:"koch_stroke_weight,omitempty"`

	// Barnsley fern
	SelectedFernType string `json:"selectedFernType,omitempty"`

	// Sierpiński
	SelectedSierpinskiType string   `json:"selectedSierpinskiType,omitempty"`
	SIterations            *int     `json:"s_iterations,omitempty"`
	SLength                *float64 `json:"s_length,omitempty"`

	CurrentGraphicsX float64 `json:"currentGraphicsX"`
	CurrentGraphicsY float64 `json:"currentGraphicsY"`
	OriginalRatio    float64 `json:"originalRatio"`
	MultiplyFactor   float64 `json:"multiplyFactor"`
}

// Family returns the parsed selectedFractal.
func (d *Document) Family() (fractals.Family, error) {
	f, err := fractals.ParseFamily(d.SelectedFractal)
	if err != nil {
		return 0, &fractals.OpError{Op: "project.family", Kind: fractals.KindUnsupportedProjectFormat, Err: err}
	}
	return f, nil
}

// Validate checks that every field the selected family needs is present.
// It does not check variant names; the renderer owns those.
func (d *Document) Validate() error {
	const op = "project.validate"
	fam, err := d.Family()
	if err != nil {
		return err
	}
	var missing []string
	need := func(ok bool, name string) {
		if !ok {
			missing = append(missing, name)
		}
	}
	need(d.Color != "", "color")
	switch fam {
	case fractals.Tree:
		need(d.SelectedTreeType != "", "selectedTreeType")
		need(d.BranchLength != nil, "branch_length")
		need(d.Angle != nil, "angle")
		need(d.StrokeWeight != nil, "stroke_weight")
	case fractals.Koch:
		need(d.SelectedKochType != "", "selectedKochType")
		need(d.Iterations != nil, "iterations")
		need(d.KochLength != nil, "koch_length")
		need(d.KochStrokeWeight != nil, "koch_stroke_weight")
	case fractals.Fern:
		need(d.SelectedFernType != "", "selectedFernType")
	case fractals.Sierpinski:
		need(d.SelectedSierpinskiType != "", "selectedSierpinskiType")
		need(d.SIterations != nil, "s_iterations")
		need(d.SLength != nil, "s_length")
	}
	need(d.CurrentGraphicsX > 0, "currentGraphicsX")
	need(d.CurrentGraphicsY > 0, "currentGraphicsY")
	need(d.OriginalRatio > 0, "originalRatio")
	need(d.MultiplyFactor > 0, "multiplyFactor")
	if len(missing) > 0 {
		return fractals.Errorf(op, fractals.KindUnsupportedProjectFormat, "%s project is missing %v", fam, missing)
	}
	if _, err := fractals.ParseHex(d.Color); err != nil {
		return fractals.Errorf(op, fractals.KindUnsupportedProjectFormat, "color %q: %v", d.Color, err)
	}
	// Levels are counted from 1; 1 is the bare figure.
	if fam == fractals.Sierpinski && *d.SIterations < 1 {
		return fractals.Errorf(op, fractals.KindUnsupportedProjectFormat, "s_iterations %d < 1", *d.SIterations)
	}
	return nil
}

// Load decodes and validates one document.
func Load(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, &fractals.OpError{Op: "project.load", Kind: fractals.KindUnsupportedProjectFormat, Err: err}
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Save writes d as indented JSON.
func Save(w io.Writer, d *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// LoadFile is Load on a file; errors carry the path.
func LoadFile(fname string) (*Document, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, &fractals.OpError{Op: "project.load", Kind: fractals.KindUnsupportedProjectFormat, Path: fname, Err: err}
	}
	defer f.Close()
	d, err := Load(f)
	if oe, ok := err.(*fractals.OpError); ok {
		oe.Path = fname
	}
	return d, err
}

// SaveFile writes d to fname through a temp file.
func SaveFile(fname string, d *Document) error {
	err := fractals.SafeWrite(fname, func(tmp string) error {
		f, err := os.Create(tmp)
		if err != nil {
			return err
		}
		if err := Save(f, d); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	})
	if err != nil {
		return fmt.Errorf("saving project %s: %w", fname, err)
	}
	fractals.Logger().Info("project saved", "path", fname, "fractal", d.SelectedFractal)
	return nil
}

// FileName is the default name of a project file, "<family>.json".
func FileName(f fractals.Family) string {
	return f.String() + ".json"
}

// Float returns a pointer to v, for filling optional fields.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for filling optional fields.
func Int(v int) *int { return &v }
