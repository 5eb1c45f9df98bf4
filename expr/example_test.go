package expr_test

import (
	"fmt"

	"honnef.co/go/implicit/expr"
)

func ExampleParse() {
	e, err := expr.Parse("2 + 3*x^2")
	if err != nil {
		panic(err)
	}
	v, err := e.Evaluate(expr.Env{"x": 2})
	if err != nil {
		panic(err)
	}
	fmt.Println(e)
	fmt.Println(v)
	// Output:
	// 2 3 x 2 ^ * +
	// 14
}

func ExampleExpression_Derivative() {
	e := expr.MustParse("sin(x)*y")
	d, err := e.Derivative("x")
	if err != nil {
		panic(err)
	}
	v, _ := d.Evaluate(expr.Env{"x": 0, "y": 5})
	fmt.Println(d)
	fmt.Println(v)
	// Output:
	// 1 x cos * y * x sin 0 * +
	// 5
}

func ExampleExpression_Compose() {
	tmpl := expr.MustParse("a*a+c")
	e := tmpl.Compose(map[string]expr.Expression{
		"a": expr.MustParse("x+1"),
		"c": expr.MustParse("y"),
	})
	fmt.Println(e)
	// Output:
	// x 1 + x 1 + * y +
}
