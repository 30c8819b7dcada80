package expand

import (
	"github.com/pkg/errors"

	"semu"
)

// ErrQuoteNotExpandable is returned by Expand when a QUOTE instruction
// appears in the main sequence or in any function body. Expanding a QUOTE would require inlining
// an entire function body (with its own fresh variable namespace) into the
// caller's, which the interpreter has no need for since it dispatches QUOTE
// directly; see SPEC_FULL.md FULL-Q2.
var ErrQuoteNotExpandable = errors.New("program contains QUOTE; expansion is undefined for it")

// Expand rewrites program's main sequence one level deeper, turning every
// synthetic instruction into its basic-only expansion per §4.6. Function
// bodies are left untouched — semu/interp dispatches their synthetic
// instructions directly, so only the main sequence is ever a candidate for
// expansion. depth 0 returns an unchanged copy; any depth above 0 expands
// one level. Expand does not compare depth with program.MaxExpansionDepth();
// cmd/semu clamps the requested depth (resolveDepth) before calling it, and
// a program containing QUOTE is rejected with ErrQuoteNotExpandable.
func Expand(program *semu.Program, depth int) (*semu.Program, error) {
	out := *program
	if depth <= 0 {
		out.Instructions = append([]semu.Instruction(nil), program.Instructions...)
		return &out, nil
	}

	for _, ins := range program.Instructions {
		if !ins.IsBasic && ins.SynOp == semu.OpQuote {
			return nil, ErrQuoteNotExpandable
		}
	}
	for _, fn := range program.Functions {
		for _, ins := range fn.Instructions {
			if !ins.IsBasic && ins.SynOp == semu.OpQuote {
				return nil, ErrQuoteNotExpandable
			}
		}
	}

	a := newAllocator(program.MaxLabelIndex, program.MaxWorkVarIndex)
	var expanded []semu.Instruction
	for _, ins := range program.Instructions {
		if ins.IsBasic {
			expanded = append(expanded, ins)
			continue
		}
		lines, err := expandOne(a, ins)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, lines...)
	}

	assignIndices(expanded)
	out.Instructions = expanded
	out.LabelMap = buildLabelMap(expanded)
	out.MaxLabelIndex = a.nextLabel - 1
	out.MaxWorkVarIndex = a.nextZ - 1
	return &out, nil
}

// assignIndices lays final 1-based Index values over a freshly expanded
// sequence, in place.
func assignIndices(lines []semu.Instruction) {
	for i := range lines {
		lines[i].Index = i + 1
	}
}

// buildLabelMap maps every canonical defining label to its 0-based position
// in lines.
func buildLabelMap(lines []semu.Instruction) map[string]int {
	m := make(map[string]int, len(lines))
	for i, ins := range lines {
		if ins.Label != "" {
			m[ins.Label] = i
		}
	}
	return m
}
