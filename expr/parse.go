package expr

import "strings"

// Parse converts the infix formula s into an Expression, using the
// shunting-yard algorithm to produce reverse Polish order.
//
// An empty formula yields an empty Expression, which fails to evaluate with
// [ErrEmpty].
func Parse(s string) (Expression, error) {
	var (
		queue []Element
		stack []Element
	)
	// operand is true where the next token must start an operand. A minus
	// sign in that position is negation and a plus sign is a no-op.
	operand := true
	for _, tok := range Tokenize(s) {
		el, err := classify(tok)
		if err != nil {
			return Expression{}, err
		}
		if operand && el.Kind == Operator {
			switch el.Op {
			case Sub:
				el = Operation(Neg)
			case Add:
				continue
			}
		}

		switch el.Kind {
		case Number, Variable:
			queue = append(queue, el)
			operand = false
		case LeftParen:
			stack = append(stack, el)
			operand = true
		case RightParen:
			for len(stack) > 0 && stack[len(stack)-1].Kind != LeftParen {
				queue = append(queue, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return Expression{}, ErrUnmatchedRightParen
			}
			stack = stack[:len(stack)-1]
			operand = false
		case Operator:
			if !el.Op.Prefix() {
				for len(stack) > 0 {
					top := stack[len(stack)-1]
					if top.Kind != Operator || !popsBefore(top.Op, el.Op) {
						break
					}
					queue = append(queue, top)
					stack = stack[:len(stack)-1]
				}
			}
			stack = append(stack, el)
			operand = true
		}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Kind == LeftParen {
			return Expression{}, ErrUnmatchedLeftParen
		}
		queue = append(queue, stack[i])
	}
	return newExpression(queue)
}

// popsBefore reports whether top, sitting on the operator stack, has to be
// emitted before op is pushed.
func popsBefore(top, op Op) bool {
	tp, p := top.Precedence(), op.Precedence()
	return tp > p || (tp == p && !op.RightAssociative())
}

// ParseEquation parses an equation of the form f = g as f - g, whose zero
// set is the solution set of the equation. Without an equals sign, s is
// parsed as is.
func ParseEquation(s string) (Expression, error) {
	lhs, rhs, ok := strings.Cut(s, "=")
	if !ok {
		return Parse(s)
	}
	if strings.Contains(rhs, "=") {
		return Expression{}, ErrMultipleEquals
	}
	return Parse("(" + lhs + ")-(" + rhs + ")")
}

// MustParse is like [Parse] but panics if s cannot be parsed.
func MustParse(s string) Expression {
	e, err := Parse(s)
	if err != nil {
		panic("expr: parsing " + s + ": " + err.Error())
	}
	return e
}
