package koch

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/scottkirkwood/fractals"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestSegmentCounts(t *testing.T) {
	for _, shape := range Shapes {
		seed := shape.Seed(300)
		for g := 0; g <= 4; g++ {
			segs, err := Rewrite(seed, shape.Rule(), g)
			if err != nil {
				t.Fatalf("%v g=%d: %v", shape, g, err)
			}
			want := len(seed) * int(math.Pow(float64(shape.Rule().Arity()), float64(g)))
			if len(segs) != want {
				t.Errorf("%v g=%d: got %d segments, want %d", shape, g, len(segs), want)
			}
			if c := Count(len(seed), shape.Rule(), g); c != want {
				t.Errorf("Count(%v, %d) = %d, want %d", shape, g, c, want)
			}
		}
	}
}

func TestSeedSizes(t *testing.T) {
	want := map[Shape]int{Line: 1, Snowflake: 3, Antisnowflake: 3, MinkowskiSausage: 1, MinkowskiIsland: 4}
	for shape, n := range want {
		if got := len(shape.Seed(10)); got != n {
			t.Errorf("%v seed has %d segments, want %d", shape, got, n)
		}
	}
}

func TestZeroGenerationsIsIdentity(t *testing.T) {
	for _, shape := range Shapes {
		seed := shape.Seed(120)
		got, err := Rewrite(seed, shape.Rule(), 0)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(seed, got); diff != "" {
			t.Errorf("%v: generation 0 changed the seed (-seed +got):\n%s", shape, diff)
		}
	}
}

func TestContinuity(t *testing.T) {
	for _, shape := range Shapes {
		segs, err := Generate(shape, 200, 3)
		if err != nil {
			t.Fatal(err)
		}
		for i := 1; i < len(segs); i++ {
			if diff := cmp.Diff(segs[i-1].B, segs[i].A, approx); diff != "" {
				t.Fatalf("%v: segment %d does not start where %d ends:\n%s", shape, i, i-1, diff)
			}
		}
	}
}

func TestClosedSeedsChain(t *testing.T) {
	for _, shape := range []Shape{Snowflake, Antisnowflake, MinkowskiIsland} {
		seed := shape.Seed(100)
		for i := range seed {
			next := seed[(i+1)%len(seed)]
			if diff := cmp.Diff(seed[i].B, next.A, approx); diff != "" {
				t.Errorf("%v: seed edge %d does not meet the next one:\n%s", shape, i, diff)
			}
		}
	}
}

func TestTriadic(t *testing.T) {
	got := Triadic.Apply(fractals.Seg(fractals.Pt(0, 0), fractals.Pt(3, 0)))
	h := math.Sqrt(3) / 2
	want := []fractals.Segment{
		fractals.Seg(fractals.Pt(0, 0), fractals.Pt(1, 0)),
		fractals.Seg(fractals.Pt(1, 0), fractals.Pt(1.5, -h)),
		fractals.Seg(fractals.Pt(1.5, -h), fractals.Pt(2, 0)),
		fractals.Seg(fractals.Pt(2, 0), fractals.Pt(3, 0)),
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Triadic (-want +got):\n%s", diff)
	}
}

func TestOctic(t *testing.T) {
	got := Octic.Apply(fractals.Seg(fractals.Pt(0, 0), fractals.Pt(4, 0)))
	pts := []fractals.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 0},
		{X: 2, Y: -1}, {X: 3, Y: -1}, {X: 3, Y: 0}, {X: 4, Y: 0},
	}
	var want []fractals.Segment
	for i := 1; i < len(pts); i++ {
		want = append(want, fractals.Seg(pts[i-1], pts[i]))
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Octic (-want +got):\n%s", diff)
	}
	for _, s := range got {
		if math.Abs(s.Length()-1) > 1e-9 {
			t.Errorf("segment %v has length %v, want 1", s, s.Length())
		}
	}
}

func TestAntisnowflakeBendsInward(t *testing.T) {
	snow, _ := Generate(Snowflake, 90, 1)
	anti, _ := Generate(Antisnowflake, 90, 1)
	// Tent apexes are the end points of every second child.
	for i := 1; i < len(snow); i += 4 {
		if r := snow[i].B.Hypot(); r <= 45 {
			t.Errorf("snowflake apex %v at radius %v should point outwards", snow[i].B, r)
		}
		if r := anti[i].B.Hypot(); r >= 45 {
			t.Errorf("antisnowflake apex %v at radius %v should point inwards", anti[i].B, r)
		}
	}
}

func TestNoSelfCrossing(t *testing.T) {
	segs, err := Generate(Snowflake, 100, 2)
	if err != nil {
		t.Fatal(err)
	}
	n := len(segs)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // closing neighbours share a point
			}
			if segs[i].Crosses(segs[j]) {
				t.Fatalf("segments %d and %d cross: %v %v", i, j, segs[i], segs[j])
			}
		}
	}
}

func TestInvalid(t *testing.T) {
	if _, err := Rewrite(Line.Seed(10), Triadic, -1); !fractals.IsKind(err, fractals.KindInvalidParameter) {
		t.Errorf("expected invalid parameter for negative generations, got %v", err)
	}
	if _, err := Generate(Line, 0, 1); !fractals.IsKind(err, fractals.KindInvalidParameter) {
		t.Errorf("expected invalid parameter for zero length, got %v", err)
	}
	if c := Count(1, Octic, 40); c != -1 {
		t.Errorf("expected overflow to report -1, got %d", c)
	}
}

func TestParseShape(t *testing.T) {
	for _, shape := range Shapes {
		got, err := ParseShape(shape.String())
		if err != nil || got != shape {
			t.Errorf("ParseShape(%q) = %v, %v", shape, got, err)
		}
	}
}
