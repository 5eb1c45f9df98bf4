package expr

import (
	"math"
	"strconv"
)

// Kind identifies the variant of an [Element].
type Kind uint8

const (
	Number Kind = iota + 1
	Variable
	Operator
	LeftParen
	RightParen
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Variable:
		return "variable"
	case Operator:
		return "operator"
	case LeftParen:
		return "left parenthesis"
	case RightParen:
		return "right parenthesis"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Element is a single token of an expression. Which fields are meaningful
// depends on Kind: Value for numbers, Op for operators. Name holds the
// element's symbol for every kind.
type Element struct {
	Kind  Kind
	Value float64
	Op    Op
	Name  string
}

// Num returns a number element for v.
func Num(v float64) Element {
	return Element{Kind: Number, Value: v, Name: strconv.FormatFloat(v, 'g', -1, 64)}
}

// Var returns a variable element named name.
func Var(name string) Element {
	return Element{Kind: Variable, Name: name}
}

// Operation returns the element for op.
func Operation(op Op) Element {
	return Element{Kind: Operator, Op: op, Name: op.String()}
}

// Symbol returns the text the element was parsed from. Composition matches
// substitution keys against it.
func (e Element) Symbol() string { return e.Name }

func (e Element) String() string { return e.Name }

// Op is an operator or named function.
type Op uint8

const (
	Add Op = iota + 1
	Sub
	Mul
	Div
	Pow
	Neg
	Sin
	Cos
	Tan
	Ln
	Arcsin
	Arccos
	Arctan
	Exp
	Sqrt

	numOps
)

// FunctionPrecedence is the precedence of named functions. They always
// bind tighter than any infix operator.
const FunctionPrecedence = math.MaxInt

type operator struct {
	symbol     string
	precedence int
	rightAssoc bool
	prefix     bool
	arity      int
	apply      func(a, b float64) float64
}

var operators = [numOps]operator{
	Add: {symbol: "+", precedence: 2, arity: 2, apply: func(a, b float64) float64 { return a + b }},
	Sub: {symbol: "-", precedence: 2, arity: 2, apply: func(a, b float64) float64 { return a - b }},
	Mul: {symbol: "*", precedence: 3, arity: 2, apply: mul},
	Div: {symbol: "/", precedence: 3, arity: 2, apply: func(a, b float64) float64 { return a / b }},
	Pow: {symbol: "^", precedence: 4, rightAssoc: true, arity: 2, apply: math.Pow},
	// Unary minus sits between * and ^ so that -x^2 is -(x^2).
	Neg:    {symbol: "neg", precedence: 4, rightAssoc: true, prefix: true, arity: 1, apply: func(a, _ float64) float64 { return -a }},
	Sin:    function("sin", math.Sin),
	Cos:    function("cos", math.Cos),
	Tan:    function("tan", math.Tan),
	Ln:     function("ln", math.Log),
	Arcsin: function("arcsin", math.Asin),
	Arccos: function("arccos", math.Acos),
	Arctan: function("arctan", math.Atan),
	Exp:    function("exp", math.Exp),
	Sqrt:   function("sqrt", math.Sqrt),
}

func function(symbol string, fn func(float64) float64) operator {
	return operator{
		symbol:     symbol,
		precedence: FunctionPrecedence,
		prefix:     true,
		arity:      1,
		apply:      func(a, _ float64) float64 { return fn(a) },
	}
}

// mul multiplies a and b, except that an exact zero on either side wins
// over NaN and infinities. This keeps 0·ln(0) terms of derivatives from
// poisoning the result.
func mul(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a * b
}

var opsBySymbol = func() map[string]Op {
	m := make(map[string]Op, numOps)
	for op := Add; op < numOps; op++ {
		m[operators[op].symbol] = op
	}
	return m
}()

// LookupOp returns the operator spelled symbol.
func LookupOp(symbol string) (Op, bool) {
	op, ok := opsBySymbol[symbol]
	return op, ok
}

func (op Op) valid() bool { return op >= Add && op < numOps }

func (op Op) String() string {
	if !op.valid() {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return operators[op].symbol
}

// Precedence returns the binding strength of op. Higher binds tighter.
func (op Op) Precedence() int { return operators[op].precedence }

// RightAssociative reports whether op groups right to left.
func (op Op) RightAssociative() bool { return operators[op].rightAssoc }

// Prefix reports whether op is written before its single operand, as named
// functions and unary minus are.
func (op Op) Prefix() bool { return operators[op].prefix }

// Arity returns the number of operands op consumes.
func (op Op) Arity() int { return operators[op].arity }

// Apply computes op. For unary operators b is ignored.
func (op Op) Apply(a, b float64) float64 { return operators[op].apply(a, b) }
