package implicit

import (
	"context"
	"math"
	"testing"
)

func TestDifferentSign(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	tests := []struct {
		a, b float64
		want bool
	}{
		{1, -1, true},
		{-2, 3, true},
		{0, 1, true},
		{-1, 0, true},
		{math.Copysign(0, -1), -1, true},
		{0, math.Copysign(0, -1), false},
		{1, 2, false},
		{-1, -2, false},
		{nan, 1, false},
		{-1, nan, false},
		{inf, -1, false},
		{1, -inf, false},
	}
	for _, tt := range tests {
		if got := differentSign(tt.a, tt.b); got != tt.want {
			t.Errorf("differentSign(%v, %v) = %t, want %t", tt.a, tt.b, got, tt.want)
		}
	}
}

func crossings(t *testing.T, g *Graph) []Segment {
	t.Helper()
	grid, err := g.Sample(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return g.Crossings(grid)
}

func TestCrossingsVertical(t *testing.T) {
	// f = x changes sign between the second and fourth column of samples.
	vp := Bounds(-1, 1, 0, 1)
	sp := Spacing{DX: 0.5, DY: 0.5}
	want := []Segment{
		Seg(Pt(-0.25, -0.25), Pt(-0.25, 0.25)),
		Seg(Pt(-0.25, 0.25), Pt(-0.25, 0.75)),
		Seg(Pt(0.25, -0.25), Pt(0.25, 0.25)),
		Seg(Pt(0.25, 0.25), Pt(0.25, 0.75)),
	}
	diff(t, want, crossings(t, mustNew(t, "x", vp, sp)))

	want = append(want,
		Seg(Pt(-0.25, 0.75), Pt(-0.25, 1.25)),
		Seg(Pt(0.25, 0.75), Pt(0.25, 1.25)),
	)
	diff(t, want, crossings(t, mustNew(t, "x", vp, sp, WithEdgeCrossings(true))))
}

func TestCrossingsHorizontal(t *testing.T) {
	vp := Bounds(0, 1, -1, 1)
	sp := Spacing{DX: 0.5, DY: 0.5}
	want := []Segment{
		Seg(Pt(-0.25, -0.25), Pt(0.25, -0.25)),
		Seg(Pt(-0.25, 0.25), Pt(0.25, 0.25)),
		Seg(Pt(0.25, -0.25), Pt(0.75, -0.25)),
		Seg(Pt(0.25, 0.25), Pt(0.75, 0.25)),
	}
	diff(t, want, crossings(t, mustNew(t, "y", vp, sp)))

	want = append(want,
		Seg(Pt(0.75, -0.25), Pt(1.25, -0.25)),
		Seg(Pt(0.75, 0.25), Pt(1.25, 0.25)),
	)
	diff(t, want, crossings(t, mustNew(t, "y", vp, sp, WithEdgeCrossings(true))))
}

func TestCrossingsNone(t *testing.T) {
	vp := Bounds(-1, 1, -1, 1)
	for _, eq := range []string{"x^2+y^2+1", "ln(0-1)", "1/0"} {
		if segs := crossings(t, mustNew(t, eq, vp, Spacing{DX: 0.25, DY: 0.25})); len(segs) != 0 {
			t.Errorf("%s: got %d segments, want none", eq, len(segs))
		}
	}
}
