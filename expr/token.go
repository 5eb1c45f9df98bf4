package expr

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const delimiters = "+-*/^()"

// Tokenize splits s into tokens. Whitespace is dropped. Each of the
// delimiters + - * / ^ ( ) is a token of its own; any other run of
// characters, such as a number or a function name, forms a single token.
func Tokenize(s string) []string {
	s = strings.Join(strings.FieldsFunc(s, unicode.IsSpace), "")
	var toks []string
	start := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(delimiters, s[i]) < 0 {
			continue
		}
		if start < i {
			toks = append(toks, s[start:i])
		}
		toks = append(toks, s[i:i+1])
		start = i + 1
	}
	if start < len(s) {
		toks = append(toks, s[start:])
	}
	return toks
}

func classify(tok string) (Element, error) {
	switch {
	case tok == "(":
		return Element{Kind: LeftParen, Name: tok}, nil
	case tok == ")":
		return Element{Kind: RightParen, Name: tok}, nil
	}
	if v, ok := parseNumber(tok); ok {
		return Element{Kind: Number, Value: v, Name: tok}, nil
	}
	if r, size := utf8.DecodeRuneInString(tok); size == len(tok) && unicode.IsLetter(r) {
		return Var(tok), nil
	}
	op, ok := LookupOp(tok)
	if !ok {
		return Element{}, &UnknownFunctionError{Name: tok}
	}
	return Operation(op), nil
}

// parseNumber parses a decimal literal such as 3, .5 or 1e5. Literals too
// large for a float64 become ±Inf.
func parseNumber(tok string) (float64, bool) {
	if tok == "" || !(tok[0] == '.' || '0' <= tok[0] && tok[0] <= '9') {
		return 0, false
	}
	if len(tok) > 1 && tok[0] == '0' && (tok[1] == 'x' || tok[1] == 'X') {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}
