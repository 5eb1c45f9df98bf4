package expr

import (
	"slices"
	"strings"
)

// Env binds variable names to values.
type Env map[string]float64

// Expression is a formula in reverse Polish order. Expressions are
// immutable; Compose and Derivative return new Expressions.
//
// The zero value is the empty expression.
type Expression struct {
	queue []Element
	// depth is the largest number of values on the evaluation stack.
	depth int
}

// newExpression checks that queue evaluates to exactly one value without
// running out of operands.
func newExpression(queue []Element) (Expression, error) {
	depth, ok := stackDepth(queue)
	if !ok {
		return Expression{}, ErrMalformed
	}
	return Expression{queue: queue, depth: depth}, nil
}

func stackDepth(queue []Element) (depth int, ok bool) {
	if len(queue) == 0 {
		return 0, true
	}
	n := 0
	for _, el := range queue {
		switch el.Kind {
		case Number, Variable:
			n++
		case Operator:
			n -= el.Op.Arity()
			if n < 0 {
				return 0, false
			}
			n++
		default:
			return 0, false
		}
		depth = max(depth, n)
	}
	return depth, n == 1
}

// IsEmpty reports whether e has no elements.
func (e Expression) IsEmpty() bool { return len(e.queue) == 0 }

// String returns the elements of e in reverse Polish order, separated by
// spaces.
func (e Expression) String() string {
	var sb strings.Builder
	for i, el := range e.queue {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(el.Symbol())
	}
	return sb.String()
}

// Variables returns the distinct variable names used by e, in order of
// first use.
func (e Expression) Variables() []string {
	var out []string
	for _, el := range e.queue {
		if el.Kind == Variable && !slices.Contains(out, el.Name) {
			out = append(out, el.Name)
		}
	}
	return out
}

// Equal reports whether e and o consist of the same elements.
func (e Expression) Equal(o Expression) bool {
	return slices.Equal(e.queue, o.queue)
}

// Evaluate computes the value of e with variables bound by env.
//
// Numeric domain problems, such as the logarithm of a negative number, are
// not errors; they produce NaN or infinities.
func (e Expression) Evaluate(env Env) (float64, error) {
	if len(e.queue) == 0 {
		return 0, ErrEmpty
	}
	stack := make([]float64, 0, e.depth)
	for _, el := range e.queue {
		switch el.Kind {
		case Number:
			stack = append(stack, el.Value)
		case Variable:
			v, ok := env[el.Name]
			if !ok {
				return 0, &UnknownVariableError{Name: el.Name}
			}
			stack = append(stack, v)
		case Operator:
			n := el.Op.Arity()
			if len(stack) < n {
				return 0, ErrMalformed
			}
			var a, b float64
			if n == 2 {
				a, b = stack[len(stack)-2], stack[len(stack)-1]
			} else {
				a = stack[len(stack)-1]
			}
			stack = append(stack[:len(stack)-n], el.Op.Apply(a, b))
		case LeftParen:
			return 0, ErrUnmatchedLeftParen
		case RightParen:
			return 0, ErrUnmatchedRightParen
		}
	}
	if len(stack) != 1 {
		return 0, ErrMalformed
	}
	return stack[0], nil
}

// Compose returns a copy of e in which every element whose symbol is a key
// of subs is replaced by the whole mapped expression. Substitution is a
// single pass over e; inserted elements are not substituted again.
func (e Expression) Compose(subs map[string]Expression) Expression {
	n := 0
	for _, el := range e.queue {
		if sub, ok := subs[el.Symbol()]; ok {
			n += len(sub.queue)
		} else {
			n++
		}
	}
	out := make([]Element, 0, n)
	for _, el := range e.queue {
		if sub, ok := subs[el.Symbol()]; ok {
			out = append(out, sub.queue...)
		} else {
			out = append(out, el)
		}
	}
	depth, _ := stackDepth(out)
	return Expression{queue: out, depth: depth}
}
