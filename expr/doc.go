// Package expr parses, evaluates and differentiates formulas of two-variable
// equations.
//
// A formula is written in infix notation over numbers, single-letter
// variables, the operators + - * / ^ and the functions sin, cos, tan, ln,
// arcsin, arccos, arctan, exp and sqrt. [Parse] turns it into an
// [Expression], a sequence of [Element] values in reverse Polish order,
// which can be evaluated against an [Env] of variable bindings.
//
// # Precedence
//
// From loosest to tightest: + and - (left associative), * and / (left
// associative), ^ and unary minus (right associative), and finally named
// functions. Thus 2^3^2 is 2^9 and -x^2 is -(x^2).
//
// # Differentiation
//
// [Expression.Derivative] differentiates symbolically in a single pass over
// the reverse Polish sequence, keeping the value and the derivative of every
// sub-expression on two stacks. Each operator's calculus rule is itself a
// small formula over the placeholders a, b, c and d that is instantiated with
// [Expression.Compose]. Results are not simplified; d/dx x^2 contains a
// 0·x^2·ln(x) term, which multiplication's zero rule keeps finite at x ≤ 0.
package expr
