package expr

import "errors"

// The messages of these errors are shown to users as they are.

//lint:file-ignore ST1005 error strings are user-facing messages

var (
	ErrUnmatchedLeftParen  = errors.New("Unmatched left parenthesis")
	ErrUnmatchedRightParen = errors.New("Unmatched right parenthesis")
	ErrMalformed           = errors.New("Malformed expression")
	ErrEmpty               = errors.New("Empty expression")
	ErrMultipleEquals      = errors.New("Multiple equals signs")
)

// UnknownFunctionError is returned when a token is neither a number, a
// single-letter variable nor a known operator.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string { return "Unknown function " + e.Name }

// UnknownVariableError is returned when evaluation finds no binding for a
// variable.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string { return "Unknown variable " + e.Name }
