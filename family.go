package fractals

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/unicode/norm"
)

// Family is one of the four fractal families the renderer knows.
type Family int

const (
	Tree Family = iota
	Koch
	Fern
	Sierpinski
)

// Families lists every family in menu order.
var Families = []Family{Tree, Koch, Fern, Sierpinski}

var familyNames = [...]string{
	Tree:       "Tree",
	Koch:       "Koch",
	Fern:       "Barnsley fern",
	Sierpinski: "Sierpiński",
}

// String returns the display name, which is also the name stored in project
// files and used for exported file names.
func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// Valid reports whether f is a known family.
func (f Family) Valid() bool {
	return f >= 0 && int(f) < len(familyNames)
}

// ParseFamily is the inverse of Family.String. The name is compared in NFC,
// so a decomposed "Sierpin\u0301ski" matches too.
func ParseFamily(name string) (Family, error) {
	name = norm.NFC.String(name)
	for i, n := range familyNames {
		if n == name {
			return Family(i), nil
		}
	}
	return 0, fmt.Errorf("unknown fractal %q", name)
}

// ParseHex parses "#rrggbb" (or "#rgb") into an opaque colour.
func ParseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Hex formats the colour as "#rrggbb", dropping alpha.
func Hex(c color.Color) string {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "#000000"
	}
	// Un-premultiply before handing the colour to colorful.
	cf := colorful.Color{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
	}
	return cf.Hex()
}
