package implicit

import (
	"math"
	"testing"
)

func TestNodeArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Vec(3, -4), Pt(4, -2).Sub(Pt(1, 2)))
	diff(t, Pt(1, 1), Pt(0, 0).Midpoint(Pt(2, 2)))
	diff(t, Vec(-3, 4), Vec(3, -4).Negate())
}

func TestNodeDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestNodeWithin(t *testing.T) {
	p := Pt(1, 1)
	tests := []struct {
		o    Node
		want bool
	}{
		{Pt(1, 1), true},
		{Pt(1.5, 0.5), true},
		{Pt(2, 1), true},
		{Pt(2.01, 1), false},
		{Pt(1, -0.5), false},
		{Pt(math.NaN(), 1), false},
	}
	for _, tt := range tests {
		if got := p.Within(tt.o, 1); got != tt.want {
			t.Errorf("%v.Within(%v, 1) = %t, want %t", p, tt.o, got, tt.want)
		}
	}
}

func TestSegmentEqual(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(1, 2))
	if !s.Equal(Seg(Pt(1, 2), Pt(0, 0))) {
		t.Error("reversed segment should be equal")
	}
	if s.Equal(Seg(Pt(0, 0), Pt(2, 1))) {
		t.Error("different segments should not be equal")
	}
	diff(t, Bounds(0, 1, 0, 2), Seg(Pt(1, 0), Pt(0, 2)).BoundingBox())
	if got := Seg(Pt(0, 0), Pt(3, 4)).Length(); got != 5 {
		t.Errorf("got length %v, want 5", got)
	}
}
