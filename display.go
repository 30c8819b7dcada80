package semu

import (
	"fmt"
	"strings"
)

// Display renders a program as the human-readable text described in §6:
// a header (Program/Inputs/Labels) followed by one line per instruction,
// carrying its type tag, label field, command text and cycle cost. depth
// only affects the trailing ancestry suffix: at depth 1 (the output of
// expand.Expand) each line that originated from a synthetic instruction
// carries "<<< #n" pointing at that instruction's original index.
func Display(p *Program, depth int) string {
	var b strings.Builder
	writeHeader(&b, p)
	for _, ins := range p.Instructions {
		writeInstructionLine(&b, ins, depth)
	}
	for _, fn := range p.Functions {
		fmt.Fprintf(&b, "\nFunction: %s (%s)\n", fn.Name, fn.UserString)
		for _, ins := range fn.Instructions {
			writeInstructionLine(&b, ins, depth)
		}
	}
	return b.String()
}

func writeHeader(b *strings.Builder, p *Program) {
	fmt.Fprintf(b, "Program: %s\n", p.Name)
	fmt.Fprintf(b, "Inputs: %s\n", strings.Join(p.InputVars, ", "))

	labels := make([]string, 0, len(p.LabelMap))
	for l := range p.LabelMap {
		labels = append(labels, l)
	}
	sortLabels(labels)
	if referencesExit(p) {
		labels = append(labels, ExitLabel)
	}
	fmt.Fprintf(b, "Labels: %s\n", strings.Join(labels, ", "))
}

func referencesExit(p *Program) bool {
	for _, ins := range p.allSequences() {
		for _, in := range ins {
			if in.IsBasic {
				if in.BasicOp == OpJumpNotZero && CanonLabel(in.JumpLabel) == ExitLabel {
					return true
				}
				continue
			}
			for _, key := range []string{ArgGotoLabel, ArgJZLabel, ArgJEConstantLabel, ArgJEVariableLabel} {
				if CanonLabel(in.Args[key]) == ExitLabel {
					return true
				}
			}
		}
	}
	return false
}

func sortLabels(labels []string) {
	// Sort by numeric suffix so L2 precedes L10; EXIT (added separately)
	// and any non-L label sort after, in textual order.
	less := func(i, j int) bool {
		ni, oki := LabelIndex(labels[i])
		nj, okj := LabelIndex(labels[j])
		if oki && okj {
			return ni < nj
		}
		if oki != okj {
			return oki
		}
		return labels[i] < labels[j]
	}
	for i := 1; i < len(labels); i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			labels[j], labels[j-1] = labels[j-1], labels[j]
		}
	}
}

func writeInstructionLine(b *strings.Builder, ins Instruction, depth int) {
	kind := "S"
	if ins.IsBasic {
		kind = "B"
	}
	command := formatCommand(ins)
	fmt.Fprintf(b, "#%d (%s) %s %s (%d)", ins.Index, kind, formatLabelField(ins.Label), command, ins.Cost)
	if depth >= 1 && ins.Origin > 0 {
		fmt.Fprintf(b, " <<< #%d", ins.Origin)
	}
	b.WriteByte('\n')
}

func formatLabelField(label string) string {
	if label == "" {
		return "     "
	}
	if len(label) > 5 {
		label = label[:5]
	}
	return fmt.Sprintf("%-5s", label)
}

func formatCommand(ins Instruction) string {
	if ins.IsBasic {
		return formatBasicCommand(ins)
	}
	return formatSyntheticCommand(ins)
}

func formatBasicCommand(ins Instruction) string {
	v := ins.Var.Name()
	switch ins.BasicOp {
	case OpIncrease:
		return v + " <- " + v + " + 1"
	case OpDecrease:
		return v + " <- " + v + " - 1"
	case OpNeutral:
		return v + " <- " + v
	case OpJumpNotZero:
		return "IF " + v + " != 0 GOTO " + ins.JumpLabel
	default:
		return ""
	}
}

func formatSyntheticCommand(ins Instruction) string {
	v := ins.Var.Name()
	args := ins.Args
	switch ins.SynOp {
	case OpZeroVariable:
		return v + " <- 0"
	case OpAssignment:
		src := strings.TrimSpace(args[ArgAssignedVariable])
		if src == "" {
			return v + " <- 0"
		}
		return v + " <- " + src
	case OpConstantAssignment:
		c := args[ArgConstantValue]
		if c == "" {
			c = "0"
		}
		return v + " <- " + c
	case OpGotoLabel:
		return "GOTO " + args[ArgGotoLabel]
	case OpJumpZero:
		return "IF " + v + " = 0 GOTO " + args[ArgJZLabel]
	case OpJumpEqualConstant:
		return "IF " + v + " = " + args[ArgConstantValue] + " GOTO " + args[ArgJEConstantLabel]
	case OpJumpEqualVariable:
		return "IF " + v + " = " + args[ArgVariableName] + " GOTO " + args[ArgJEVariableLabel]
	case OpQuote:
		name := args[ArgFunctionName]
		if name == "" {
			name = "?"
		}
		fargs := args[ArgFunctionArgs]
		return v + " <- " + name + "(" + fargs + ")"
	case OpInput:
		return v + " <- INPUT"
	default:
		return ""
	}
}
