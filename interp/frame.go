// Package interp executes a semu.Program: it owns the frame model, the
// op-dispatch loop, the function dispatcher (user-defined and built-in),
// and the function-argument expression evaluator.
package interp

import "semu"

// Frame is the transient execution state for one call: a variable map, a
// program counter, and a running cycle count. The interpreter allocates a
// fresh Frame per program run and per QUOTE call into a user-defined
// function; there is no dynamic scope across calls.
type Frame struct {
	Vars   map[string]int64
	PC     int
	Cycles int64
}

// newFrame builds a zero-initialized frame sized for maxWorkVar work
// variables, with the given inputs bound to x1, x2, ... (missing inputs
// default to 0, per §4.3).
func newFrame(inputs []int64, maxWorkVar int) *Frame {
	f := &Frame{Vars: make(map[string]int64, len(inputs)+maxWorkVar+1)}
	for i, v := range inputs {
		f.Vars[(semu.Var{Kind: semu.KindX, Index: i + 1}).Name()] = v
	}
	for z := 1; z <= maxWorkVar; z++ {
		f.Vars[(semu.Var{Kind: semu.KindZ, Index: z}).Name()] = 0
	}
	f.Vars["y"] = 0
	return f
}

// Get reads a variable, defaulting to 0 for anything not yet touched
// (work variables beyond maxWorkVar, or a stray reference the parser
// didn't catch).
func (f *Frame) Get(v semu.Var) int64 {
	return f.Vars[v.Name()]
}

// Set writes a variable, creating its entry if it was not yet present.
func (f *Frame) Set(v semu.Var, val int64) {
	f.Vars[v.Name()] = val
}

// Snapshot returns an independent copy of the frame, used by semu/debug to
// push onto its undo history.
func (f *Frame) Snapshot() *Frame {
	cp := &Frame{Vars: make(map[string]int64, len(f.Vars)), PC: f.PC, Cycles: f.Cycles}
	for k, v := range f.Vars {
		cp.Vars[k] = v
	}
	return cp
}
