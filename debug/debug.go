// Package debug implements the step-by-step debugger (§6): a controller
// that advances a program one instruction at a time, keeps a snapshot at
// every step so StepBackward can undo without re-running from the start,
// and stops a runaway session at a fixed step ceiling rather than hanging
// an interactive terminal.
package debug

import (
	"github.com/pkg/errors"

	"semu"
	"semu/interp"
)

// MaxSteps bounds an interactive session: after this many forward steps a
// session that still hasn't finished is aborted rather than left to spin
// forever under a human's thumb (§6 "a debug session MUST NOT be allowed to
// run unbounded").
const MaxSteps = 1000

// ErrStepCeiling is returned by StepForward once MaxSteps forward steps
// have been taken without the program finishing.
var ErrStepCeiling = errors.New("debug session exceeded its step ceiling")

// Snapshot is one entry of a Session's undo history: the frame state
// immediately before the instruction at PC executes.
type Snapshot struct {
	Frame *interp.Frame
	Steps int
}

// Session drives one program through the interpreter's per-instruction
// execute primitive, one step at a time, keeping every intermediate Frame
// so the caller can step back through history (§6 "stepping backward MUST
// restore the exact prior state").
//
// QUOTE calls are stepped atomically: a QUOTE instruction's entire callee
// execution (argument evaluation, frame setup, body, return) happens
// inside a single StepForward, exactly as it happens inside a single cycle
// charge under the static cost model — there is no way to pause mid-call
// without exposing the callee's private frame, which isn't part of this
// program's state.
type Session struct {
	program      *semu.Program
	instructions []semu.Instruction
	labelMap     map[string]int
	runner       *interp.Runner

	// StepCeiling overrides MaxSteps when nonzero, the same override
	// pattern interp.Runner uses for CycleBudget.
	StepCeiling int

	history []Snapshot
	steps   int
	done    bool
}

// Initialize starts a new session over program at the given expansion
// depth (0 or 1; see expand.Expand), bound to inputs. stepCeiling overrides
// MaxSteps when nonzero.
func Initialize(program *semu.Program, inputs []int64, depth int, runner *interp.Runner, stepCeiling int) (*Session, error) {
	instructions, labelMap, maxWorkVar, err := interp.Prepare(program, depth)
	if err != nil {
		return nil, err
	}
	frame := interp.NewFrame(inputs, maxWorkVar)
	s := &Session{
		program:      program,
		instructions: instructions,
		labelMap:     labelMap,
		runner:       runner,
		StepCeiling:  stepCeiling,
		history:      []Snapshot{{Frame: frame.Snapshot(), Steps: 0}},
	}
	return s, nil
}

// stepCeiling returns the effective step ceiling: StepCeiling if set, else
// MaxSteps.
func (s *Session) stepCeiling() int {
	if s.StepCeiling > 0 {
		return s.StepCeiling
	}
	return MaxSteps
}

// Finished reports whether the program counter has run off the end of the
// instruction sequence.
func (s *Session) Finished() bool {
	return s.done
}

// Current returns the frame as of the most recent step (or the initial
// frame, before any step has been taken).
func (s *Session) Current() *interp.Frame {
	return s.history[len(s.history)-1].Frame
}

// StepForward executes exactly one instruction (or, for a QUOTE, exactly
// one atomic function call) and records the resulting state. It returns
// false, nil once the program has already finished; it is not an error to
// call StepForward again after that.
func (s *Session) StepForward() (bool, error) {
	if s.done {
		return false, nil
	}
	if s.steps >= s.stepCeiling() {
		return false, ErrStepCeiling
	}

	frame := s.Current().Snapshot()
	more, err := s.runner.Step(s.program, s.instructions, s.labelMap, frame)
	if err != nil {
		return false, err
	}
	s.steps++
	s.history = append(s.history, Snapshot{Frame: frame, Steps: s.steps})
	if !more {
		s.done = true
	}
	return more, nil
}

// StepBackward restores the frame as of the previous step. It returns
// false (not an error) when already at the session's initial state.
func (s *Session) StepBackward() bool {
	if len(s.history) <= 1 {
		return false
	}
	s.history = s.history[:len(s.history)-1]
	s.done = false
	return true
}

// History returns every recorded snapshot, oldest first, for display.
func (s *Session) History() []Snapshot {
	return s.history
}
