package interp

import (
	"strings"

	"semu"
)

// dispatch resolves fname per §4.4: a program-defined function first, then
// the built-in table, evaluating fargs against the caller's frame either
// way. A name matching neither is a defensive runtime error — the parser's
// validateFunctionReferences pass should already have rejected it.
func (r *Runner) dispatch(program *semu.Program, fname, fargs string, caller *Frame) (int64, error) {
	fname = strings.TrimSpace(fname)
	if fn, ok := program.FunctionByName(fname); ok {
		return r.callUserFunction(program, fn, fargs, caller)
	}
	args, err := evaluateTerms(fargs, caller, func(name, nested string) (int64, error) {
		return r.dispatch(program, name, nested, caller)
	})
	if err != nil {
		return 0, err
	}
	if v, ok := callBuiltin(fname, args); ok {
		return v, nil
	}
	return 0, semu.NewRuntimeError(semu.ErrKindUnknownFunction, "unknown function %q", fname)
}

// callUserFunction evaluates fargs in the caller's frame, binds the results
// to x1..xk in a fresh frame, runs the function body to completion, and
// returns the callee's y. The callee's cycle count never reaches the
// caller's counter (§4.4 "argument sub-expression evaluation is free";
// Q3 confirms QUOTE's own static cost is the only charge the caller pays).
func (r *Runner) callUserFunction(program *semu.Program, fn semu.Function, fargs string, caller *Frame) (int64, error) {
	args, err := evaluateTerms(fargs, caller, func(name, nested string) (int64, error) {
		return r.dispatch(program, name, nested, caller)
	})
	if err != nil {
		return 0, err
	}

	maxZ := 0
	for _, ins := range fn.Instructions {
		if !ins.IsBasic {
			continue
		}
		if ins.Var.Kind == semu.KindZ && ins.Var.Index > maxZ {
			maxZ = ins.Var.Index
		}
	}
	callee := newFrame(args, maxZ)
	if err := r.execute(program, fn.Instructions, callee); err != nil {
		return 0, err
	}
	return callee.Get(semu.Var{Kind: semu.KindY}), nil
}

// callBuiltin applies the §4.2 table. Missing arguments default to 0,
// mirroring the original engine's defensive indexing.
func callBuiltin(name string, args []int64) (int64, bool) {
	arg := func(i int) int64 {
		if i < len(args) {
			return args[i]
		}
		return 0
	}
	switch name {
	case "CONST0":
		return 0, true
	case "Minus":
		return arg(0) - arg(1), true // never saturates, §4.2
	case "Smaller_Than":
		return boolInt(arg(0) < arg(1)), true
	case "Smaller_Equal_Than":
		return boolInt(arg(0) <= arg(1)), true
	case "EQUAL":
		return boolInt(arg(0) == arg(1)), true
	case "NOT":
		return boolInt(arg(0) == 0), true
	case "AND":
		if len(args) == 0 {
			return 0, true
		}
		for _, a := range args {
			if a == 0 {
				return 0, true
			}
		}
		return 1, true
	default:
		return 0, false
	}
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
