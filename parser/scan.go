package parser

import (
	"encoding/xml"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"semu"
)

// Parse reads an S-Program document and returns a fully validated Program,
// or the first ParseError/ValidationError encountered.
func Parse(r io.Reader) (*semu.Program, error) {
	var doc docProgram
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, semu.NewParseError(0, "malformed document: %v", err)
	}
	if strings.TrimSpace(doc.Name) == "" {
		return nil, semu.NewParseError(0, "program name is missing")
	}

	instructions, maxLabel, maxZ, err := scanInstructions(doc.Instructions.Instructions)
	if err != nil {
		return nil, err
	}
	labelMap := buildLabelMap(instructions)
	if err := validateJumps(instructions, labelMap); err != nil {
		return nil, err
	}

	functions := make([]semu.Function, 0, len(doc.Functions))
	for fi, df := range doc.Functions {
		if strings.TrimSpace(df.Name) == "" {
			return nil, semu.NewParseError(0, "function %d is missing a name attribute", fi+1)
		}
		if strings.TrimSpace(df.UserString) == "" {
			return nil, semu.NewParseError(0, "function %q is missing a user-string attribute", df.Name)
		}
		fInstrs, fMaxLabel, fMaxZ, err := scanInstructions(df.Instructions.Instructions)
		if err != nil {
			return nil, errors.Wrapf(err, "in function %q", df.Name)
		}
		fLabelMap := buildLabelMap(fInstrs)
		if err := validateJumps(fInstrs, fLabelMap); err != nil {
			return nil, errors.Wrapf(err, "in function %q", df.Name)
		}
		if fMaxLabel > maxLabel {
			maxLabel = fMaxLabel
		}
		if fMaxZ > maxZ {
			maxZ = fMaxZ
		}
		functions = append(functions, semu.Function{
			Name:         df.Name,
			UserString:   df.UserString,
			Instructions: fInstrs,
		})
	}

	if err := validateFunctionReferences(instructions, functions); err != nil {
		return nil, err
	}

	prog := &semu.Program{
		Name:            doc.Name,
		Instructions:    instructions,
		LabelMap:        labelMap,
		MaxLabelIndex:   maxLabel,
		MaxWorkVarIndex: maxZ,
		Functions:       functions,
	}
	prog.InputVars = collectInputVars(prog)
	return prog, nil
}

// scanInstructions is the first pass: it builds an Instruction slice and
// tracks the maximum label and work-variable indices seen, but does not
// validate cross-references (that's validateJumps, over the whole slice,
// since forward references are legal).
func scanInstructions(nodes []docInstruction) ([]semu.Instruction, int, int, error) {
	out := make([]semu.Instruction, 0, len(nodes))
	maxLabel, maxZ := 0, 0

	for i, node := range nodes {
		index := i + 1
		v, err := semu.ParseVar(node.Variable)
		if err != nil {
			return nil, 0, 0, semu.NewParseError(index, "invalid variable name %q", node.Variable)
		}
		if v.Kind == semu.KindZ && v.Index > maxZ {
			maxZ = v.Index
		}

		label := ""
		if strings.TrimSpace(node.Label) != "" {
			label = semu.CanonLabel(node.Label)
			if n, ok := semu.LabelIndex(label); ok && n > maxLabel {
				maxLabel = n
			}
		}

		args := node.Arguments.toMap()
		typ := strings.ToLower(strings.TrimSpace(node.Type))
		opName := strings.ToUpper(strings.TrimSpace(node.Name))

		var ins semu.Instruction
		switch typ {
		case "basic":
			ins, err = scanBasic(label, index, opName, v, args)
		case "synthetic":
			ins, err = scanSynthetic(label, index, opName, v, args)
		case "":
			return nil, 0, 0, semu.NewParseError(index, "missing type attribute")
		default:
			return nil, 0, 0, semu.NewParseError(index, "unknown instruction type %q", node.Type)
		}
		if err != nil {
			return nil, 0, 0, err
		}
		if n, ok := maxLabelInArgs(args); ok && n > maxLabel {
			maxLabel = n
		}
		if n := maxZInArgs(args); n > maxZ {
			maxZ = n
		}
		out = append(out, ins)
	}
	return out, maxLabel, maxZ, nil
}

func scanBasic(label string, index int, opName string, v semu.Var, args map[string]string) (semu.Instruction, error) {
	switch opName {
	case "INCREASE":
		return semu.NewBasic(label, index, semu.OpIncrease, v, ""), nil
	case "DECREASE":
		return semu.NewBasic(label, index, semu.OpDecrease, v, ""), nil
	case "NEUTRAL":
		return semu.NewBasic(label, index, semu.OpNeutral, v, ""), nil
	case "JUMP_NOT_ZERO":
		lbl := strings.TrimSpace(args[semu.ArgJNZLabel])
		if lbl == "" {
			return semu.Instruction{}, semu.NewParseError(index, "JUMP_NOT_ZERO requires %s", semu.ArgJNZLabel)
		}
		return semu.NewBasic(label, index, semu.OpJumpNotZero, v, semu.CanonLabel(lbl)), nil
	default:
		return semu.Instruction{}, semu.NewParseError(index, "unknown basic instruction %q", opName)
	}
}

func scanSynthetic(label string, index int, opName string, v semu.Var, args map[string]string) (semu.Instruction, error) {
	op, ok := syntheticOpByName[opName]
	if !ok {
		return semu.Instruction{}, semu.NewParseError(index, "unknown synthetic instruction %q", opName)
	}
	if err := checkSyntheticArgs(index, op, args); err != nil {
		return semu.Instruction{}, err
	}
	return semu.NewSynthetic(label, index, op, v, args), nil
}

var syntheticOpByName = map[string]semu.SyntheticOp{
	"ZERO_VARIABLE":        semu.OpZeroVariable,
	"ASSIGNMENT":           semu.OpAssignment,
	"CONSTANT_ASSIGNMENT":  semu.OpConstantAssignment,
	"GOTO_LABEL":           semu.OpGotoLabel,
	"JUMP_ZERO":            semu.OpJumpZero,
	"JUMP_EQUAL_CONSTANT":  semu.OpJumpEqualConstant,
	"JUMP_EQUAL_VARIABLE":  semu.OpJumpEqualVariable,
	"QUOTE":                semu.OpQuote,
	"INPUT":                semu.OpInput,
}

// checkSyntheticArgs validates the required-argument table in §4.1.
func checkSyntheticArgs(index int, op semu.SyntheticOp, args map[string]string) error {
	need := func(key string) error {
		if strings.TrimSpace(args[key]) == "" {
			return semu.NewParseError(index, "%s requires argument %s", op, key)
		}
		return nil
	}
	needConstant := func(key string) error {
		if err := need(key); err != nil {
			return err
		}
		if _, err := semu.ParseConstant(args[key]); err != nil {
			return semu.NewParseError(index, "invalid %s %q", key, args[key])
		}
		return nil
	}
	needVar := func(key string) error {
		if err := need(key); err != nil {
			return err
		}
		if _, err := semu.ParseVar(args[key]); err != nil {
			return semu.NewParseError(index, "invalid %s %q", key, args[key])
		}
		return nil
	}

	switch op {
	case semu.OpGotoLabel:
		return need(semu.ArgGotoLabel)
	case semu.OpJumpZero:
		return need(semu.ArgJZLabel)
	case semu.OpJumpEqualConstant:
		if err := need(semu.ArgJEConstantLabel); err != nil {
			return err
		}
		return needConstant(semu.ArgConstantValue)
	case semu.OpJumpEqualVariable:
		if err := need(semu.ArgJEVariableLabel); err != nil {
			return err
		}
		return needVar(semu.ArgVariableName)
	case semu.OpConstantAssignment:
		return needConstant(semu.ArgConstantValue)
	case semu.OpQuote:
		if err := need(semu.ArgFunctionName); err != nil {
			return err
		}
		// functionArguments may legitimately be empty ("no arguments").
		return nil
	case semu.OpZeroVariable, semu.OpAssignment, semu.OpInput:
		return nil
	default:
		return nil
	}
}

func buildLabelMap(instructions []semu.Instruction) map[string]int {
	m := make(map[string]int)
	for i, ins := range instructions {
		if ins.Label == "" {
			continue
		}
		if _, exists := m[ins.Label]; !exists {
			m[ins.Label] = i
		}
	}
	return m
}

// validateJumps checks every label reference against labelMap; EXIT is
// always valid regardless of whether it is ever used as a defining label.
func validateJumps(instructions []semu.Instruction, labelMap map[string]int) error {
	check := func(index int, lbl string) error {
		if lbl == "" || lbl == semu.ExitLabel {
			return nil
		}
		if _, ok := labelMap[lbl]; !ok {
			return semu.NewValidationError(index, "undefined label %q", lbl)
		}
		return nil
	}
	for _, ins := range instructions {
		if ins.IsBasic {
			if ins.BasicOp == semu.OpJumpNotZero {
				if err := check(ins.Index, ins.JumpLabel); err != nil {
					return err
				}
			}
			continue
		}
		var lbl string
		switch ins.SynOp {
		case semu.OpGotoLabel:
			lbl = semu.CanonLabel(ins.Args[semu.ArgGotoLabel])
		case semu.OpJumpZero:
			lbl = semu.CanonLabel(ins.Args[semu.ArgJZLabel])
		case semu.OpJumpEqualConstant:
			lbl = semu.CanonLabel(ins.Args[semu.ArgJEConstantLabel])
		case semu.OpJumpEqualVariable:
			lbl = semu.CanonLabel(ins.Args[semu.ArgJEVariableLabel])
		default:
			continue
		}
		if err := check(ins.Index, lbl); err != nil {
			return err
		}
	}
	return nil
}

var reXRef = regexp.MustCompile(`(?i)\bx(\d+)\b`)

func maxLabelInArgs(args map[string]string) (int, bool) {
	found := false
	max := 0
	for _, key := range []string{semu.ArgGotoLabel, semu.ArgJZLabel, semu.ArgJEConstantLabel, semu.ArgJEVariableLabel} {
		if lbl, ok := args[key]; ok && lbl != "" {
			if n, ok := semu.LabelIndex(semu.CanonLabel(lbl)); ok {
				found = true
				if n > max {
					max = n
				}
			}
		}
	}
	return max, found
}

func maxZInArgs(args map[string]string) int {
	max := 0
	for _, key := range []string{semu.ArgAssignedVariable, semu.ArgVariableName} {
		if text, ok := args[key]; ok && text != "" {
			if v, err := semu.ParseVar(text); err == nil && v.Kind == semu.KindZ && v.Index > max {
				max = v.Index
			}
		}
	}
	return max
}

// collectInputVars scans the main instruction sequence (and, per §3
// invariant 3-4, the functionArguments text of its QUOTE instructions) for
// x{n} references and returns them sorted by index. Function bodies are
// never scanned: x{n} inside a function is that function's own bound
// parameter, local to its call frame, not a reference to a program input
// (mirrors EngineServiceImpl's inputVariables computation, which only
// walks the main instruction list).
func collectInputVars(p *semu.Program) []string {
	seen := make(map[int]bool)
	scan := func(seq []semu.Instruction) {
		for _, ins := range seq {
			if ins.IsBasic {
				if ins.Var.Kind == semu.KindX {
					seen[ins.Var.Index] = true
				}
				continue
			}
			if ins.Var.Kind == semu.KindX {
				seen[ins.Var.Index] = true
			}
			for _, key := range []string{semu.ArgAssignedVariable, semu.ArgVariableName} {
				if text, ok := ins.Args[key]; ok && text != "" {
					if v, err := semu.ParseVar(text); err == nil && v.Kind == semu.KindX {
						seen[v.Index] = true
					}
				}
			}
			if text := ins.Args[semu.ArgFunctionArgs]; text != "" {
				for _, m := range reXRef.FindAllStringSubmatch(text, -1) {
					if n, err := strconv.Atoi(m[1]); err == nil {
						seen[n] = true
					}
				}
			}
		}
	}
	scan(p.Instructions)

	indices := make([]int, 0, len(seen))
	for n := range seen {
		indices = append(indices, n)
	}
	sort.Ints(indices)

	out := make([]string, len(indices))
	for i, n := range indices {
		out[i] = (semu.Var{Kind: semu.KindX, Index: n}).Name()
	}
	return out
}
