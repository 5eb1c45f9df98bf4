package implicit

import (
	"context"
	"errors"
	"math"
	"testing"

	"honnef.co/go/implicit/expr"
)

func TestNewErrors(t *testing.T) {
	vp := Bounds(-1, 1, -1, 1)
	sp := DefaultSpacing(vp)

	if _, err := New("x^2+y^2=1", vp, sp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var fnErr *expr.UnknownFunctionError
	if _, err := New("foo(x)=y", vp, sp); !errors.As(err, &fnErr) || fnErr.Name != "foo" {
		t.Errorf("got %v, want unknown function foo", err)
	}
	var varErr *expr.UnknownVariableError
	if _, err := New("x+z", vp, sp); !errors.As(err, &varErr) || varErr.Name != "z" {
		t.Errorf("got %v, want unknown variable z", err)
	}
	if _, err := New("(x+y", vp, sp); !errors.Is(err, expr.ErrUnmatchedLeftParen) {
		t.Errorf("got %v, want %v", err, expr.ErrUnmatchedLeftParen)
	}
	if _, err := New("x=y=1", vp, sp); !errors.Is(err, expr.ErrMultipleEquals) {
		t.Errorf("got %v, want %v", err, expr.ErrMultipleEquals)
	}
	if _, err := New("x", Bounds(1, 1, -1, 1), sp); !errors.Is(err, ErrDegenerateViewport) {
		t.Errorf("got %v, want %v", err, ErrDegenerateViewport)
	}
	for _, bad := range []Spacing{
		{DX: 0, DY: 0.1},
		{DX: 0.1, DY: -1},
		{DX: math.NaN(), DY: 0.1},
		{DX: 0.1, DY: math.Inf(1)},
		{DX: 0.1, DY: 0.1, DL: -1},
		{DX: 1e-9, DY: 1e-9},
		{DX: 1e-20, DY: 0.1},
		{DX: 0.1, DY: 5e-324},
	} {
		if _, err := New("x", vp, bad); !errors.Is(err, ErrInvalidSpacing) {
			t.Errorf("%+v: got %v, want %v", bad, err, ErrInvalidSpacing)
		}
	}
}

func TestNewLatticeLimit(t *testing.T) {
	vp := Bounds(0, 1, 0, 1)
	// 8193×8193 nodes is just above MaxSamples.
	if _, err := New("x", vp, Spacing{DX: 1.0 / 8192, DY: 1.0 / 8192}); !errors.Is(err, ErrInvalidSpacing) {
		t.Errorf("got %v, want %v", err, ErrInvalidSpacing)
	}
	g, err := New("x", vp, Spacing{DX: 1.0 / 4096, DY: 1.0 / 4096})
	if err != nil {
		t.Fatal(err)
	}
	if g.Rows() != 4097 || g.Columns() != 4097 {
		t.Errorf("got %d×%d lattice, want 4097×4097", g.Rows(), g.Columns())
	}
}

func TestGraphDimensions(t *testing.T) {
	g := mustNew(t, "x-y", Bounds(0, 1, 0, 2), Spacing{DX: 0.25, DY: 0.25})
	if g.Rows() != 5 || g.Columns() != 9 {
		t.Errorf("got %d×%d lattice, want 5×9", g.Rows(), g.Columns())
	}
	diff(t, Pt(0.5, 1.75), g.Node(2, 7))

	grid, err := g.Sample(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := grid.At(2, 7); got != -1.25 {
		t.Errorf("got sample %v, want -1.25", got)
	}
	if len(grid.Row(4)) != 9 {
		t.Errorf("got row of length %d, want 9", len(grid.Row(4)))
	}
}

func TestDefaultSpacing(t *testing.T) {
	diff(t, Spacing{DX: 0.01, DY: 0.01, DL: 0.01}, DefaultSpacing(Bounds(0, 4, 0, 2)))
}

func TestCircleMembership(t *testing.T) {
	vp := Bounds(-2, 2, -2, 2)
	g := mustNew(t, "x^2+y^2=1", vp, DefaultSpacing(vp))
	segs := g.Create()
	if len(segs) == 0 {
		t.Fatal("no segments")
	}
	for _, s := range segs {
		for _, p := range []Node{s.P0, s.P1} {
			if f := p.X*p.X + p.Y*p.Y - 1; math.Abs(f) >= 1e-8 {
				t.Fatalf("end point %v is off the curve: f = %g", p, f)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	vp := Bounds(-3, 3, -2, 2)
	sp := Spacing{DX: 0.05, DY: 0.05, DL: 0.05}
	const eq = "sin(x)*cos(y)=0.3"

	want := mustNew(t, eq, vp, sp).Create()
	diff(t, want, mustNew(t, eq, vp, sp).Create())
	for _, n := range []int{2, 3, 8} {
		got := mustNew(t, eq, vp, sp, WithWorkers(n)).Create()
		diff(t, want, got)
	}
}

func TestOutsideDomain(t *testing.T) {
	vp := Bounds(-1, 1, -1, 1)
	for _, eq := range []string{"ln(x)=y", "1/x=y", "sqrt(x)=y"} {
		segs := mustNew(t, eq, vp, Spacing{DX: 0.1, DY: 0.1}).Create()
		for _, s := range segs {
			if s.IsNaN() || s.IsInf() {
				t.Errorf("%s: got non-finite segment %v", eq, s)
			}
		}
	}
}

func TestCreateCancelled(t *testing.T) {
	vp := Bounds(-2, 2, -2, 2)
	g := mustNew(t, "x^2+y^2=1", vp, DefaultSpacing(vp), WithWorkers(4))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := g.CreateContext(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want %v", err, context.Canceled)
	}
}
