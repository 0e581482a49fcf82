package fern

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/scottkirkwood/fractals"
)

func TestSelect(t *testing.T) {
	classic, _ := Coefficients(Classic)
	variation, _ := Coefficients(Variation2)
	tests := []struct {
		table *Table
		r     float64
		want  int
	}{
		{&classic, 0, 0},
		{&classic, 0.0099, 0},
		{&classic, 0.01, 1},
		{&classic, 0.8599, 1},
		{&classic, 0.86, 2},
		{&classic, 0.93, 3},
		{&classic, 0.9999, 3},
		{&classic, 1.5, 3},
		{&variation, 0.015, 0},
		{&variation, 0.02, 1},
		{&variation, 0.84, 2},
	}
	for _, tt := range tests {
		if got := tt.table.Select(tt.r); got != tt.table[tt.want] {
			t.Errorf("Select(%v) = %+v, want map %d", tt.r, got, tt.want)
		}
	}
}

func TestThresholdsAreLiteral(t *testing.T) {
	want := map[Variant][4]float64{
		Classic:    {0.01, 0.86, 0.93, 1},
		Variation1: {0.02, 0.84, 0.93, 1},
		Variation2: {0.02, 0.84, 0.93, 1},
		Variation3: {0.02, 0.84, 0.93, 1},
	}
	for v, th := range want {
		table, err := Coefficients(v)
		if err != nil {
			t.Fatal(err)
		}
		for i, m := range table {
			if m.Threshold != th[i] {
				t.Errorf("%v map %d threshold = %v, want %v", v, i, m.Threshold, th[i])
			}
		}
	}
}

func TestStep(t *testing.T) {
	classic, _ := Coefficients(Classic)
	got := Step(State{X: 1, Y: 2}, &classic, 0.5)
	want := State{X: 0.85 + 0.08, Y: -0.04 + 1.7 + 1.6}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Step (-want +got):\n%s", diff)
	}
	stem := Step(State{X: 5, Y: 5}, &classic, 0.001)
	if diff := cmp.Diff(State{X: 0, Y: 0.8}, stem, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("stem map (-want +got):\n%s", diff)
	}
}

func TestClassicStaysInDomain(t *testing.T) {
	const (
		n         = 100000
		transient = 20
	)
	rng := rand.New(rand.NewSource(42))
	pts, _, err := Sample(State{}, Classic, n+transient, rng.Float64)
	if err != nil {
		t.Fatal(err)
	}
	inside := 0
	for _, p := range pts[transient:] {
		if p.X >= -2.182 && p.X <= 2.656 && p.Y >= 0 && p.Y <= 9.998 {
			inside++
		}
	}
	if frac := float64(inside) / n; frac < 0.999 {
		t.Errorf("only %.4f of the points are inside the domain", frac)
	}
}

func TestSampleThreadsState(t *testing.T) {
	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))

	whole, end, err := Sample(State{}, Variation1, 200, a.Float64)
	if err != nil {
		t.Fatal(err)
	}
	first, mid, _ := Sample(State{}, Variation1, 120, b.Float64)
	second, end2, _ := Sample(mid, Variation1, 80, b.Float64)

	if diff := cmp.Diff(whole, append(first, second...)); diff != "" {
		t.Errorf("split sampling differs (-whole +split):\n%s", diff)
	}
	if end != end2 {
		t.Errorf("final states differ: %+v vs %+v", end, end2)
	}
	if end != (State{X: whole[199].X, Y: whole[199].Y}) {
		t.Errorf("final state %+v is not the last point %v", end, whole[199])
	}
}

func TestSampleInvalid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, _, err := Sample(State{}, Variant(7), 10, rng.Float64); !fractals.IsKind(err, fractals.KindInvalidParameter) {
		t.Errorf("expected invalid parameter, got %v", err)
	}
	if _, _, err := Sample(State{}, Classic, -1, rng.Float64); !fractals.IsKind(err, fractals.KindInvalidParameter) {
		t.Errorf("expected invalid parameter, got %v", err)
	}
}

func TestPlace(t *testing.T) {
	pl := Place(Classic, 1400, 700)
	if diff := cmp.Diff(Placement{Origin: fractals.Pt(1300.0/3, 100), Size: 525}, pl, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Place (-want +got):\n%s", diff)
	}
	bottomLeft := pl.Project(fractals.Pt(Domain.MinX, Domain.MinY))
	topRight := pl.Project(fractals.Pt(Domain.MaxX, Domain.MaxY))
	if diff := cmp.Diff(fractals.Pt(1300.0/3, 625), bottomLeft, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("domain min (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(fractals.Pt(1300.0/3+525, 100), topRight, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("domain max (-want +got):\n%s", diff)
	}
	v3 := Place(Variation3, 1000, 600)
	if diff := cmp.Diff(Placement{Origin: fractals.Pt(250, -200), Size: 720}, v3, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Variation 3 placement (-want +got):\n%s", diff)
	}
}
