package expr

// A rule describes how an operator combines the values and derivatives of
// its operands. Both formulas are written over the placeholders a and b
// (first operand and its derivative) and c and d (second operand and its
// derivative).
type rule struct {
	value Expression
	deriv Expression
}

var rules [numOps]rule

func init() {
	for op, r := range map[Op][2]string{
		Add:    {"a+c", "b+d"},
		Sub:    {"a-c", "b-d"},
		Mul:    {"a*c", "b*c+a*d"},
		Div:    {"a/c", "(b*c-a*d)/(c*c)"},
		Pow:    {"a^c", "b*c*a^(c-1)+d*a^c*ln(a)"},
		Neg:    {"neg(a)", "neg(b)"},
		Sin:    {"sin(a)", "b*cos(a)"},
		Cos:    {"cos(a)", "0-b*sin(a)"},
		Tan:    {"tan(a)", "b/(cos(a)*cos(a))"},
		Ln:     {"ln(a)", "b/a"},
		Arcsin: {"arcsin(a)", "b/sqrt(1-a*a)"},
		Arccos: {"arccos(a)", "0-b/sqrt(1-a*a)"},
		Arctan: {"arctan(a)", "b/(1+a*a)"},
		Exp:    {"exp(a)", "b*exp(a)"},
		Sqrt:   {"sqrt(a)", "b/(2*sqrt(a))"},
	} {
		rules[op] = rule{value: MustParse(r[0]), deriv: MustParse(r[1])}
	}
}

var (
	zero = Expression{queue: []Element{Num(0)}, depth: 1}
	one  = Expression{queue: []Element{Num(1)}, depth: 1}
)

// Derivative returns the partial derivative of e with respect to the
// variable v. The result is built from fixed per-operator rules and is not
// simplified.
func (e Expression) Derivative(v string) (Expression, error) {
	if len(e.queue) == 0 {
		return Expression{}, ErrEmpty
	}
	// values[i] is a sub-expression of e and derivs[i] its derivative.
	var values, derivs []Expression
	for _, el := range e.queue {
		switch el.Kind {
		case Number:
			values = append(values, Expression{queue: []Element{el}, depth: 1})
			derivs = append(derivs, zero)
		case Variable:
			values = append(values, Expression{queue: []Element{el}, depth: 1})
			if el.Name == v {
				derivs = append(derivs, one)
			} else {
				derivs = append(derivs, zero)
			}
		case Operator:
			n := el.Op.Arity()
			if len(values) < n {
				return Expression{}, ErrMalformed
			}
			subs := make(map[string]Expression, 2*n)
			k := len(values) - n
			subs["a"], subs["b"] = values[k], derivs[k]
			if n == 2 {
				subs["c"], subs["d"] = values[k+1], derivs[k+1]
			}
			r := rules[el.Op]
			values = append(values[:k], r.value.Compose(subs))
			derivs = append(derivs[:k], r.deriv.Compose(subs))
		case LeftParen:
			return Expression{}, ErrUnmatchedLeftParen
		case RightParen:
			return Expression{}, ErrUnmatchedRightParen
		}
	}
	if len(derivs) != 1 {
		return Expression{}, ErrMalformed
	}
	return derivs[0], nil
}
