package implicit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func mustNew(t *testing.T, eq string, vp Viewport, sp Spacing, opts ...Option) *Graph {
	t.Helper()
	g, err := New(eq, vp, sp, opts...)
	if err != nil {
		t.Fatalf("New(%q): %v", eq, err)
	}
	return g
}
