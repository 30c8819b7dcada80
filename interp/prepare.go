package interp

import (
	"semu"
	"semu/expand"
)

// NewFrame is the exported form of newFrame, used by semu/debug to seed a
// session's initial snapshot.
func NewFrame(inputs []int64, maxWorkVar int) *Frame {
	return newFrame(inputs, maxWorkVar)
}

// Prepare resolves program to the instruction sequence a session should
// step through at the given depth, expanding it first if depth == 1. It
// returns the sequence, its label map, and the work-variable ceiling a
// fresh frame needs to be sized for.
func Prepare(program *semu.Program, depth int) ([]semu.Instruction, map[string]int, int, error) {
	if depth <= 0 {
		return program.Instructions, buildLabelMap(program.Instructions), program.MaxWorkVarIndex, nil
	}
	expanded, err := expand.Expand(program, depth)
	if err != nil {
		return nil, nil, 0, err
	}
	return expanded.Instructions, buildLabelMap(expanded.Instructions), expanded.MaxWorkVarIndex, nil
}

// Step executes exactly one instruction at frame.PC against instructions
// and reports whether the program has more instructions left to run. It is
// the single-step primitive semu/debug.Session drives; Runner.Run's
// execute loop calls the unexported step directly instead, since it never
// needs to pause mid-run.
func (r *Runner) Step(program *semu.Program, instructions []semu.Instruction, labelMap map[string]int, frame *Frame) (bool, error) {
	end := len(instructions)
	if frame.PC >= end {
		return false, nil
	}
	ins := instructions[frame.PC]
	frame.Cycles += ins.Cost
	if frame.Cycles > r.budget() {
		return false, semu.NewRuntimeError(semu.ErrKindCycleLimitExceeded,
			"exceeded cycle budget of %d (possible infinite loop)", r.budget())
	}
	if err := r.step(program, instructions, labelMap, end, frame, ins); err != nil {
		return false, err
	}
	return frame.PC < end, nil
}
