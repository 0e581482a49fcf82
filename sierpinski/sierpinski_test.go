package sierpinski

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/scottkirkwood/fractals"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestCarpetDepthOne(t *testing.T) {
	const L = 90.0
	prims, err := Generate(Carpet, fractals.Pt(10, 20), L, 1)
	if err != nil {
		t.Fatal(err)
	}
	var want []fractals.Primitive
	for _, rc := range [][2]float64{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}} {
		want = append(want, fractals.Square(fractals.Pt(10+rc[1]*30, 20+rc[0]*30), L/3))
	}
	if diff := cmp.Diff(want, prims, approx); diff != "" {
		t.Errorf("carpet depth 1 (-want +got):\n%s", diff)
	}
}

func TestTriangleDepthOne(t *testing.T) {
	const L = 100.0
	prims, err := Generate(Triangle, fractals.Pt(0, 0), L, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(prims) != 3 {
		t.Fatalf("got %d triangles, want 3", len(prims))
	}
	for i, p := range prims {
		if p.Shape != fractals.ShapeTriangle {
			t.Errorf("primitive %d is %v, want a triangle", i, p.Shape)
		}
		for j := 0; j < 3; j++ {
			side := fractals.Seg(p.P[j], p.P[(j+1)%3]).Length()
			if math.Abs(side-L/2) > 1e-9 {
				t.Errorf("triangle %d side %d = %v, want %v", i, j, side, L/2)
			}
		}
	}
	// Two on the base, one raised and centred.
	if diff := cmp.Diff(fractals.Pt(L/4, -L*math.Sqrt(3)/4), prims[2].P[0], approx); diff != "" {
		t.Errorf("top triangle origin (-want +got):\n%s", diff)
	}
}

func TestDepthZero(t *testing.T) {
	prims, err := Generate(Triangle, fractals.Pt(0, 0), 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []fractals.Primitive{fractals.Triangle(fractals.Pt(0, 0), fractals.Pt(1, -math.Sqrt(3)), fractals.Pt(2, 0))}
	if diff := cmp.Diff(want, prims, approx); diff != "" {
		t.Errorf("depth 0 (-want +got):\n%s", diff)
	}
}

func TestCounts(t *testing.T) {
	for _, v := range Variants {
		for d := 0; d <= 5; d++ {
			prims, err := Generate(v, fractals.Pt(0, 0), 300, d)
			if err != nil {
				t.Fatal(err)
			}
			want := int(math.Pow(float64(v.Children()), float64(d)))
			if len(prims) != want || Count(v, d) != want {
				t.Errorf("%v depth %d: got %d (Count %d), want %d", v, d, len(prims), Count(v, d), want)
			}
		}
	}
}

func TestLimits(t *testing.T) {
	if _, err := Generate(Carpet, fractals.Pt(0, 0), 300, 8); !fractals.IsKind(err, fractals.KindRecursionLimit) {
		t.Errorf("carpet depth 8: expected recursion limit, got %v", err)
	}
	if _, err := Generate(Triangle, fractals.Pt(0, 0), 300, 40); !fractals.IsKind(err, fractals.KindRecursionLimit) {
		t.Errorf("triangle depth 40: expected recursion limit, got %v", err)
	}
	if _, err := Generate(Triangle, fractals.Pt(0, 0), 300, -1); !fractals.IsKind(err, fractals.KindInvalidParameter) {
		t.Errorf("negative depth: expected invalid parameter, got %v", err)
	}
	if _, err := Generate(Carpet, fractals.Pt(0, 0), 0, 2); !fractals.IsKind(err, fractals.KindInvalidParameter) {
		t.Errorf("zero side: expected invalid parameter, got %v", err)
	}
}
