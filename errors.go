package semu

import "fmt"

// ParseError is raised by semu/parser for a malformed document: a missing
// element, a bad variable name, a bad integer, an unknown op name. Index is
// the 1-based source instruction position, or 0 if the error predates
// seeing any instruction (e.g. a missing root element).
type ParseError struct {
	Message string
	Index   int
}

func (e *ParseError) Error() string {
	if e.Index > 0 {
		return fmt.Sprintf("parse error at instruction %d: %s", e.Index, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// ValidationError is raised by semu/parser once a document parses
// structurally but fails a semantic check: an undefined label reference, an
// undefined function reference, a missing required argument.
type ValidationError struct {
	Message string
	Index   int
}

func (e *ValidationError) Error() string {
	if e.Index > 0 {
		return fmt.Sprintf("validation error at instruction %d: %s", e.Index, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// RuntimeErrorKind distinguishes the RuntimeError variants named in §7.
type RuntimeErrorKind uint8

const (
	// ErrKindCycleLimitExceeded means the interpreter's cycle budget was
	// exhausted before the program terminated.
	ErrKindCycleLimitExceeded RuntimeErrorKind = iota
	// ErrKindUnknownFunction means a QUOTE named a function the parser
	// should have already rejected; seeing it at runtime is a defensive
	// fallback, never expected in a program that passed validation.
	ErrKindUnknownFunction
	// ErrKindInvalidVariable means a variable lookup failed in a way the
	// parser's invariants should have precluded.
	ErrKindInvalidVariable
)

// RuntimeError is raised by semu/interp. The partial frame at the point of
// failure remains available to the caller for diagnostics: Runner.Run
// returns it in its RunResult alongside the error.
type RuntimeError struct {
	Kind    RuntimeErrorKind
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func newParseError(index int, format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Index: index}
}

func newValidationError(index int, format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...), Index: index}
}

// NewParseError is the exported constructor used by semu/parser.
func NewParseError(index int, format string, args ...any) *ParseError {
	return newParseError(index, format, args...)
}

// NewValidationError is the exported constructor used by semu/parser.
func NewValidationError(index int, format string, args ...any) *ValidationError {
	return newValidationError(index, format, args...)
}

// NewRuntimeError is the exported constructor used by semu/interp.
func NewRuntimeError(kind RuntimeErrorKind, format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
