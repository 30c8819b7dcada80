package semu

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

var (
	reBin = regexp.MustCompile(`^0b([01]+)$`)
	reOct = regexp.MustCompile(`^0o([0-7]+)$`)
	reDec = regexp.MustCompile(`^(-?[0-9]+)$`)
	reHex = regexp.MustCompile(`^0x([0-9a-fA-F]+)$`)
)

// ParseConstant parses a constantValue argument. Decimal is the form the
// document format actually emits; 0b/0o/0x prefixes are accepted too,
// following the same recognizer-table shape the teacher's assembler uses
// for its own literal constants (shared/assembler/assembler.go parseNum).
func ParseConstant(text string) (int64, error) {
	if m := reDec.FindStringSubmatch(text); m != nil {
		v, err := strconv.ParseInt(m[1], 10, 64)
		return v, errors.Wrapf(err, "invalid constant %q", text)
	}
	if m := reBin.FindStringSubmatch(text); m != nil {
		v, err := strconv.ParseInt(m[1], 2, 64)
		return v, errors.Wrapf(err, "invalid constant %q", text)
	}
	if m := reOct.FindStringSubmatch(text); m != nil {
		v, err := strconv.ParseInt(m[1], 8, 64)
		return v, errors.Wrapf(err, "invalid constant %q", text)
	}
	if m := reHex.FindStringSubmatch(text); m != nil {
		v, err := strconv.ParseInt(m[1], 16, 64)
		return v, errors.Wrapf(err, "invalid constant %q", text)
	}
	return 0, errors.Errorf("invalid constant %q", text)
}
