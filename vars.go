// Package semu implements the S-language core: the AST, the static cost
// model and the error types shared by the parser, interpreter, expander and
// debugger. Sibling packages (semu/parser, semu/interp, semu/expand,
// semu/debug) build on these types; this package holds no process-wide
// state and performs no I/O.
package semu

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	lowerCaser = cases.Lower(language.Und)
	upperCaser = cases.Upper(language.Und)
)

// CanonVar returns the lowercase canonical form of a variable name.
func CanonVar(name string) string {
	return lowerCaser.String(strings.TrimSpace(name))
}

// CanonLabel returns the uppercase canonical form of a label.
func CanonLabel(name string) string {
	return upperCaser.String(strings.TrimSpace(name))
}

// ExitLabel is the distinguished label meaning "past the last instruction".
const ExitLabel = "EXIT"

// VarKind enumerates the three variable families of the S-language.
type VarKind uint8

const (
	// KindX is an input variable, x1, x2, ...
	KindX VarKind = iota
	// KindZ is a work variable, z1, z2, ...
	KindZ
	// KindY is the single output variable, y.
	KindY
)

// Var is a parsed reference to a program variable.
type Var struct {
	Kind VarKind
	// Index is 1-based for X and Z; always 0 for Y.
	Index int
}

// Name returns the canonical lowercase textual form, e.g. "x3", "z1", "y".
func (v Var) Name() string {
	switch v.Kind {
	case KindY:
		return "y"
	case KindZ:
		return "z" + strconv.Itoa(v.Index)
	default:
		return "x" + strconv.Itoa(v.Index)
	}
}

func (v Var) String() string { return v.Name() }

// ParseVar parses a textual variable name into a Var. Accepted forms are
// "y", "x<n>" and "z<n>" with n >= 1; matching is case-insensitive and
// surrounding whitespace is ignored.
func ParseVar(text string) (Var, error) {
	trimmed := CanonVar(text)
	if trimmed == "" {
		return Var{}, errors.New("variable name must not be empty")
	}
	if trimmed == "y" {
		return Var{Kind: KindY}, nil
	}
	first := trimmed[0]
	if first != 'x' && first != 'z' {
		return Var{}, errors.Errorf("variable name %q is not recognized", text)
	}
	numPart := trimmed[1:]
	if numPart == "" {
		return Var{}, errors.Errorf("variable name %q is missing an index", text)
	}
	idx, err := strconv.Atoi(numPart)
	if err != nil {
		return Var{}, errors.Errorf("variable name %q has an invalid index", text)
	}
	if idx <= 0 {
		return Var{}, errors.Errorf("variable name %q must have a positive index", text)
	}
	kind := KindX
	if first == 'z' {
		kind = KindZ
	}
	return Var{Kind: kind, Index: idx}, nil
}

// LabelIndex reports the numeric suffix of a canonical "L<n>" label and
// whether the label matched that shape at all. Labels that aren't of the
// form L<n> (including EXIT) report ok=false.
func LabelIndex(label string) (n int, ok bool) {
	canon := CanonLabel(label)
	if !strings.HasPrefix(canon, "L") {
		return 0, false
	}
	v, err := strconv.Atoi(canon[1:])
	if err != nil {
		return 0, false
	}
	return v, true
}
