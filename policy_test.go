package implicit

import "testing"

func TestExpandPolicy(t *testing.T) {
	computed := Bounds(0, 1, 0, 1)
	center := computed.Center()
	tests := []struct {
		name    string
		current Viewport
		want    bool
	}{
		{"unchanged", computed, false},
		{"small pan", computed.Pan(Vec(0.5, -0.5)), false},
		{"pan past margin", computed.Pan(Vec(1.5, 0)), true},
		{"pan past bottom", computed.Pan(Vec(0, -1.01)), true},
		{"slight zoom in", computed.ZoomAbout(center, 1.2), false},
		{"zoom in", computed.ZoomAbout(center, 2), true},
		{"zoom out", computed.ZoomAbout(center, 0.5), false},
		{"far zoom out", computed.ZoomAbout(center, 0.25), true},
	}
	var p ExpandPolicy
	for _, tt := range tests {
		if got := p.NeedsRecompute(computed, tt.current); got != tt.want {
			t.Errorf("%s: NeedsRecompute(%v, %v) = %t, want %t", tt.name, computed, tt.current, got, tt.want)
		}
	}
}

func TestExpandPolicyRegion(t *testing.T) {
	diff(t, Bounds(-2, 4, -1, 2), ExpandPolicy{}.Region(Bounds(0, 2, 0, 1)))
	diff(t, Bounds(-1, 3, -0.5, 1.5), ExpandPolicy{Margin: 0.5}.Region(Bounds(0, 2, 0, 1)))
}

func TestAlways(t *testing.T) {
	vp := Bounds(0, 1, 0, 1)
	if Always.NeedsRecompute(vp, vp) {
		t.Error("identical viewports should not need a recompute")
	}
	if !Always.NeedsRecompute(vp, vp.Pan(Vec(0.1, 0))) {
		t.Error("moved viewport should need a recompute")
	}
}
