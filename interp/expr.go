package interp

import (
	"strings"

	"semu"
)

// callFunc evaluates a nested "(Name, args...)" term by dispatching Name
// with its own argument text, recursing back into evaluateTerms as needed.
type callFunc func(name, argsText string) (int64, error)

// evaluateTerms parses the functionArguments grammar of §4.2: a
// comma-separated sequence of terms at depth 0, each either a variable
// reference or a nested "(Name, arg1, arg2, …)" call. The empty string
// yields no terms. Splitting happens only at paren-depth 0; whitespace
// around tokens is trimmed.
func evaluateTerms(expr string, frame *Frame, call callFunc) ([]int64, error) {
	terms := splitTopLevel(expr)
	values := make([]int64, 0, len(terms))
	for _, term := range terms {
		v, err := evaluateTerm(term, frame, call)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func evaluateTerm(term string, frame *Frame, call callFunc) (int64, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return 0, nil
	}
	if strings.HasPrefix(term, "(") && strings.HasSuffix(term, ")") {
		inner := term[1 : len(term)-1]
		name, rest, _ := strings.Cut(inner, ",")
		return call(strings.TrimSpace(name), rest)
	}
	v, err := semu.ParseVar(term)
	if err != nil {
		return 0, nil // a malformed leaf defaults to 0, matching the source's defensive lookup
	}
	return frame.Get(v), nil
}

// splitTopLevel splits a comma-separated term list, treating commas inside
// balanced parentheses as part of the enclosing term rather than a
// separator.
func splitTopLevel(expr string) []string {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil
	}
	var terms []string
	depth := 0
	start := 0
	for i, c := range expr {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				terms = append(terms, expr[start:i])
				start = i + 1
			}
		}
	}
	terms = append(terms, expr[start:])
	return terms
}
