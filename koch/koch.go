// Package koch grows Koch and Minkowski curves by rewriting segments.
//
// A Shape gives the seed segments and the Rule that rewrites them. Every
// generation replaces each segment by Rule.Arity() shorter ones, in place, so
// the children of neighbouring segments keep meeting end to end.
//
// Growth is exponential: Count(len(seed), rule, g) segments after g
// generations. Rewrite does not cap g; callers must.
package koch

import (
	"fmt"
	"math"

	"github.com/scottkirkwood/fractals"
)

// Rule rewrites one segment into a fixed, ordered list of segments.
type Rule int

const (
	// Triadic replaces the middle third with a 60° tent: 4 segments.
	Triadic Rule = iota
	// Octic replaces the middle half with a square notch: 8 segments.
	Octic
)

func (r Rule) String() string {
	switch r {
	case Triadic:
		return "triadic"
	case Octic:
		return "octic"
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// Arity is the number of segments one segment becomes.
func (r Rule) Arity() int {
	if r == Octic {
		return 8
	}
	return 4
}

// Apply rewrites s. The children run from s.A to s.B in order and always bend
// to the same side of s, so reversing s flips the bend.
func (r Rule) Apply(s fractals.Segment) []fractals.Segment {
	if r == Octic {
		return octic(s)
	}
	return triadic(s)
}

func (r Rule) apply(dst []fractals.Segment, s fractals.Segment) []fractals.Segment {
	return append(dst, r.Apply(s)...)
}

func triadic(s fractals.Segment) []fractals.Segment {
	v := s.Vector().Mul(1.0 / 3)
	b1 := s.A.Add(v)
	a1 := s.B.Sub(v)
	c := b1.Add(v.Rotate(-math.Pi / 3))
	return []fractals.Segment{
		{A: s.A, B: b1},
		{A: b1, B: c},
		{A: c, B: a1},
		{A: a1, B: s.B},
	}
}

func octic(s fractals.Segment) []fractals.Segment {
	v := s.Vector().Mul(1.0 / 4)
	in := v.Rotate(math.Pi / 2)
	out := in.Mul(-1)

	b1 := s.A.Add(v)
	c1 := b1.Add(in)
	d1 := c1.Add(v)
	e1 := d1.Add(out)
	f1 := e1.Add(out)
	g1 := f1.Add(v)
	a1 := s.B.Sub(v)
	return []fractals.Segment{
		{A: s.A, B: b1},
		{A: b1, B: c1},
		{A: c1, B: d1},
		{A: d1, B: e1},
		{A: e1, B: f1},
		{A: f1, B: g1},
		{A: g1, B: a1},
		{A: a1, B: s.B},
	}
}

// Rewrite applies rule to every segment of seed, generations times. With
// zero generations it returns a copy of seed.
func Rewrite(seed []fractals.Segment, rule Rule, generations int) ([]fractals.Segment, error) {
	if generations < 0 {
		return nil, fractals.Errorf("koch.rewrite", fractals.KindInvalidParameter, "generations %d < 0", generations)
	}
	if rule != Triadic && rule != Octic {
		return nil, fractals.Errorf("koch.rewrite", fractals.KindInvalidParameter, "unknown rule %d", rule)
	}
	segs := append([]fractals.Segment(nil), seed...)
	for g := 0; g < generations; g++ {
		next := make([]fractals.Segment, 0, len(segs)*rule.Arity())
		for _, s := range segs {
			next = rule.apply(next, s)
		}
		segs = next
	}
	fractals.Logger().Debug("koch rewritten", "rule", rule, "generations", generations, "segments", len(segs))
	return segs, nil
}

// Count returns how many segments Rewrite produces, or -1 if that does not
// fit in an int.
func Count(seedLen int, rule Rule, generations int) int {
	n := seedLen
	for g := 0; g < generations; g++ {
		if n > math.MaxInt/rule.Arity() {
			return -1
		}
		n *= rule.Arity()
	}
	return n
}
