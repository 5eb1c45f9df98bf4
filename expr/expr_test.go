package expr

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluateVariables(t *testing.T) {
	e := MustParse("x^2+y^2-1")
	if got := eval(t, e, Env{"x": 0.6, "y": 0.8}); math.Abs(got) > 1e-15 {
		t.Errorf("got %v, want 0", got)
	}
	diff(t, []string{"x", "y"}, e.Variables())
}

func TestUnknownVariable(t *testing.T) {
	_, err := MustParse("z").Evaluate(Env{"x": 1, "y": 2})
	var ve *UnknownVariableError
	if !errors.As(err, &ve) {
		t.Fatalf("got error %v, want *UnknownVariableError", err)
	}
	if ve.Name != "z" {
		t.Errorf("got name %q, want %q", ve.Name, "z")
	}
	if got := err.Error(); got != "Unknown variable z" {
		t.Errorf("got message %q", got)
	}
}

func TestMulZeroDominance(t *testing.T) {
	e := MustParse("0*a")
	if got := eval(t, e, Env{"a": math.NaN()}); got != 0 {
		t.Errorf("0*NaN = %v, want 0", got)
	}
	if got := eval(t, MustParse("a*0"), Env{"a": math.Inf(-1)}); got != 0 {
		t.Errorf("-Inf*0 = %v, want 0", got)
	}
	// Only multiplication is affected.
	if got := eval(t, MustParse("0/a"), Env{"a": 0}); !math.IsNaN(got) {
		t.Errorf("0/0 = %v, want NaN", got)
	}
}

func TestDomainErrorsAreNaN(t *testing.T) {
	for _, s := range []string{"ln(0-1)", "sqrt(0-4)", "(0-8)^(1/3)", "arcsin(2)"} {
		if got := eval(t, MustParse(s), nil); !math.IsNaN(got) {
			t.Errorf("%s = %v, want NaN", s, got)
		}
	}
	if got := eval(t, MustParse("1/0"), nil); !math.IsInf(got, 1) {
		t.Errorf("1/0 = %v, want +Inf", got)
	}
}

func TestCompose(t *testing.T) {
	e := MustParse("a+c").Compose(map[string]Expression{
		"a": MustParse("1"),
		"c": MustParse("2"),
	})
	if got := eval(t, e, nil); got != 3 {
		t.Errorf("got %v, want 3", got)
	}

	// Substituting multi-element expressions must not shift later positions.
	e = MustParse("a*c").Compose(map[string]Expression{
		"a": MustParse("x+1"),
		"c": MustParse("x-1"),
	})
	if got := e.String(); got != "x 1 + x 1 - *" {
		t.Errorf("got %q", got)
	}
	if got := eval(t, e, Env{"x": 3}); got != 8 {
		t.Errorf("got %v, want 8", got)
	}
}

func TestComposeSinglePass(t *testing.T) {
	orig := MustParse("a+b")
	e := orig.Compose(map[string]Expression{
		"a": MustParse("b"),
		"b": MustParse("7"),
	})
	if got, want := e.String(), "b 7 +"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := orig.String(), "a b +"; got != want {
		t.Errorf("receiver changed to %q, want %q", got, want)
	}
}

func TestComposeOperatorSymbol(t *testing.T) {
	// Keys match any symbol, operators included. Replacing an operator
	// breaks the arity of the sequence, which evaluation reports.
	e := MustParse("x+y").Compose(map[string]Expression{"+": MustParse("1")})
	if _, err := e.Evaluate(Env{"x": 1, "y": 2}); !errors.Is(err, ErrMalformed) {
		t.Errorf("got error %v, want %v", err, ErrMalformed)
	}
}

func TestEqual(t *testing.T) {
	if !MustParse("(x+1)").Equal(MustParse("x + 1")) {
		t.Error("expected expressions to be equal")
	}
	if MustParse("x+1").Equal(MustParse("1+x")) {
		t.Error("expected expressions to differ")
	}
}
