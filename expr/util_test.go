package expr

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

func eval(t *testing.T, e Expression, env Env) float64 {
	t.Helper()
	v, err := e.Evaluate(env)
	if err != nil {
		t.Fatalf("evaluating %q: %s", e, err)
	}
	return v
}
