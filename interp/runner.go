package interp

import (
	"github.com/pkg/errors"

	"semu"
)

// DefaultCycleBudget is the interpreter's default maximum cycle count
// before a CycleLimitExceeded RuntimeError aborts the run (§4.3).
const DefaultCycleBudget = 1_000_000

// RunResult is the outcome of one Runner.Run call (§4.3, §6).
type RunResult struct {
	Y         int64
	Variables map[string]int64
	Cycles    int64
}

// HistoryEntry records one completed run for display by a CLI collaborator
// (§6 history()).
type HistoryEntry struct {
	RunNumber int
	Depth     int
	Inputs    []int64
	Y         int64
	Cycles    int64
}

// Runner executes programs. NewRunner sets SaturateDecrease to true (Q1); a
// zero-value Runner has it false. CycleBudget falls back to
// DefaultCycleBudget when left 0.
type Runner struct {
	// SaturateDecrease selects the resolution to Q1: when true (the
	// default), DECREASE clamps at zero; when false, it goes negative,
	// matching the source's "allow negative values" variant. The static
	// cost model and the expander's copy algorithm assume the saturating
	// behavior, so setting this false only affects direct DECREASE use,
	// not QUOTE's Minus (which never saturates, §4.2).
	SaturateDecrease bool

	// CycleBudget overrides DefaultCycleBudget when positive.
	CycleBudget int64

	history   []HistoryEntry
	runNumber int
}

// NewRunner returns a Runner configured with saturating DECREASE, the
// default cycle budget.
func NewRunner() *Runner {
	return &Runner{SaturateDecrease: true}
}

func (r *Runner) budget() int64 {
	if r.CycleBudget > 0 {
		return r.CycleBudget
	}
	return DefaultCycleBudget
}

// History returns every run recorded so far, oldest first.
func (r *Runner) History() []HistoryEntry {
	return r.history
}

// Run executes program on the given inputs at the given expansion depth
// (0 or 1; a depth-1 program is one the caller already ran through
// expand.Expand) and records a HistoryEntry on success. On error the
// returned RunResult holds the partial frame as it stood when the run
// aborted.
func (r *Runner) Run(program *semu.Program, inputs []int64, depth int) (RunResult, error) {
	frame := newFrame(inputs, program.MaxWorkVarIndex)
	if err := r.execute(program, program.Instructions, frame); err != nil {
		return RunResult{Y: frame.Get(semu.Var{Kind: semu.KindY}), Variables: frame.Vars, Cycles: frame.Cycles}, err
	}

	r.runNumber++
	result := RunResult{Y: frame.Get(semu.Var{Kind: semu.KindY}), Variables: frame.Vars, Cycles: frame.Cycles}
	r.history = append(r.history, HistoryEntry{
		RunNumber: r.runNumber,
		Depth:     depth,
		Inputs:    append([]int64(nil), inputs...),
		Y:         result.Y,
		Cycles:    result.Cycles,
	})
	return result, nil
}

// execute runs instructions against frame until it falls off the end or
// jumps to EXIT, using labelMap built from the same instruction slice.
// It is shared by Run (main program) and callUserFunction (function body).
func (r *Runner) execute(program *semu.Program, instructions []semu.Instruction, frame *Frame) error {
	labelMap := buildLabelMap(instructions)
	end := len(instructions)

	for frame.PC < end {
		ins := instructions[frame.PC]
		frame.Cycles += ins.Cost
		if frame.Cycles > r.budget() {
			return semu.NewRuntimeError(semu.ErrKindCycleLimitExceeded,
				"exceeded cycle budget of %d (possible infinite loop)", r.budget())
		}
		if err := r.step(program, instructions, labelMap, end, frame, ins); err != nil {
			return err
		}
	}
	return nil
}

func buildLabelMap(instructions []semu.Instruction) map[string]int {
	m := make(map[string]int)
	for i, ins := range instructions {
		if ins.Label == "" {
			continue
		}
		if _, ok := m[ins.Label]; !ok {
			m[ins.Label] = i
		}
	}
	return m
}

func target(label string, labelMap map[string]int, end int) int {
	if label == semu.ExitLabel {
		return end
	}
	if idx, ok := labelMap[label]; ok {
		return idx
	}
	return -1 // caller adds 1 (defensive fallthrough, §4.3 target())
}

func jumpOrNext(pc int, labelMap map[string]int, end int, label string) int {
	t := target(label, labelMap, end)
	if t < 0 {
		return pc + 1
	}
	return t
}

func (r *Runner) step(program *semu.Program, instructions []semu.Instruction, labelMap map[string]int, end int, frame *Frame, ins semu.Instruction) error {
	if ins.IsBasic {
		return r.stepBasic(labelMap, end, frame, ins)
	}
	return r.stepSynthetic(program, labelMap, end, frame, ins)
}

func (r *Runner) stepBasic(labelMap map[string]int, end int, frame *Frame, ins semu.Instruction) error {
	switch ins.BasicOp {
	case semu.OpIncrease:
		frame.Set(ins.Var, frame.Get(ins.Var)+1)
		frame.PC++
	case semu.OpDecrease:
		v := frame.Get(ins.Var) - 1
		if r.SaturateDecrease && v < 0 {
			v = 0
		}
		frame.Set(ins.Var, v)
		frame.PC++
	case semu.OpNeutral:
		frame.PC++
	case semu.OpJumpNotZero:
		if frame.Get(ins.Var) != 0 {
			frame.PC = jumpOrNext(frame.PC, labelMap, end, ins.JumpLabel)
		} else {
			frame.PC++
		}
	default:
		frame.PC++
	}
	return nil
}

func (r *Runner) stepSynthetic(program *semu.Program, labelMap map[string]int, end int, frame *Frame, ins semu.Instruction) error {
	v := ins.Var
	switch ins.SynOp {
	case semu.OpZeroVariable:
		frame.Set(v, 0)
		frame.PC++
	case semu.OpAssignment:
		src := ins.Args[semu.ArgAssignedVariable]
		if src == "" {
			frame.Set(v, 0)
		} else {
			sv, err := semu.ParseVar(src)
			if err != nil {
				return semu.NewRuntimeError(semu.ErrKindInvalidVariable, "invalid assignedVariable %q", src)
			}
			frame.Set(v, frame.Get(sv))
		}
		frame.PC++
	case semu.OpConstantAssignment:
		k, err := semu.ParseConstant(ins.Args[semu.ArgConstantValue])
		if err != nil {
			return semu.NewRuntimeError(semu.ErrKindInvalidVariable, "invalid constantValue at instruction %d", ins.Index)
		}
		frame.Set(v, k)
		frame.PC++
	case semu.OpGotoLabel:
		frame.PC = jumpOrNext(frame.PC, labelMap, end, semu.CanonLabel(ins.Args[semu.ArgGotoLabel]))
	case semu.OpJumpZero:
		if frame.Get(v) == 0 {
			frame.PC = jumpOrNext(frame.PC, labelMap, end, semu.CanonLabel(ins.Args[semu.ArgJZLabel]))
		} else {
			frame.PC++
		}
	case semu.OpJumpEqualConstant:
		k, err := semu.ParseConstant(ins.Args[semu.ArgConstantValue])
		if err != nil {
			return semu.NewRuntimeError(semu.ErrKindInvalidVariable, "invalid constantValue at instruction %d", ins.Index)
		}
		if frame.Get(v) == k {
			frame.PC = jumpOrNext(frame.PC, labelMap, end, semu.CanonLabel(ins.Args[semu.ArgJEConstantLabel]))
		} else {
			frame.PC++
		}
	case semu.OpJumpEqualVariable:
		cmp := ins.Args[semu.ArgVariableName]
		cv, err := semu.ParseVar(cmp)
		if err != nil {
			return semu.NewRuntimeError(semu.ErrKindInvalidVariable, "invalid variableName %q", cmp)
		}
		if frame.Get(v) == frame.Get(cv) {
			frame.PC = jumpOrNext(frame.PC, labelMap, end, semu.CanonLabel(ins.Args[semu.ArgJEVariableLabel]))
		} else {
			frame.PC++
		}
	case semu.OpQuote:
		name := ins.Args[semu.ArgFunctionName]
		result, err := r.dispatch(program, name, ins.Args[semu.ArgFunctionArgs], frame)
		if err != nil {
			return errors.Wrapf(err, "QUOTE at instruction %d", ins.Index)
		}
		frame.Set(v, result)
		frame.PC++
	case semu.OpInput:
		// Interactive prompting is a CLI concern; the core treats INPUT
		// as a pure no-op over whatever value is already bound to v.
		frame.PC++
	default:
		frame.PC++
	}
	return nil
}
