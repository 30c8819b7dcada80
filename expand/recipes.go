package expand

import "semu"

// expandOne rewrites a single synthetic instruction into its basic-only
// expansion per §4.6. The returned slice's first element inherits ins's
// defining label, so forward jumps that targeted ins still land correctly.
func expandOne(a *allocator, ins semu.Instruction) ([]semu.Instruction, error) {
	origin := ins.Index
	v := ins.Var

	var lines []semu.Instruction
	switch ins.SynOp {
	case semu.OpZeroVariable:
		lines = emitZero(a, v, origin)

	case semu.OpAssignment:
		src := ins.Args[semu.ArgAssignedVariable]
		if src == "" {
			lines = emitZero(a, v, origin)
			break
		}
		sv, err := semu.ParseVar(src)
		if err != nil {
			return nil, semu.NewValidationError(origin, "invalid assignedVariable %q", src)
		}
		if sv == v {
			lines = []semu.Instruction{basic(semu.OpNeutral, v, "", origin)}
			break
		}
		lines = emitZero(a, v, origin)
		lines = append(lines, emitCopy(a, v, sv, origin)...)

	case semu.OpConstantAssignment:
		k, err := semu.ParseConstant(ins.Args[semu.ArgConstantValue])
		if err != nil || k < 0 {
			k = 0
		}
		lines = emitZero(a, v, origin)
		for i := int64(0); i < k; i++ {
			lines = append(lines, basic(semu.OpIncrease, v, "", origin))
		}
		lines = append(lines, basic(semu.OpNeutral, v, "", origin))

	case semu.OpGotoLabel:
		target := semu.CanonLabel(ins.Args[semu.ArgGotoLabel])
		lines = emitGoto(a, target, origin)
		lines = append(lines, basic(semu.OpNeutral, v, "", origin))

	case semu.OpJumpZero:
		skip := a.label()
		first := basic(semu.OpJumpNotZero, v, skip, origin)
		lines = append(lines, first)
		lines = append(lines, emitGoto(a, semu.CanonLabel(ins.Args[semu.ArgJZLabel]), origin)...)
		neutral := basic(semu.OpNeutral, v, "", origin)
		neutral.Label = skip
		lines = append(lines, neutral)

	case semu.OpJumpEqualConstant:
		k, err := semu.ParseConstant(ins.Args[semu.ArgConstantValue])
		if err != nil || k < 0 {
			k = 0
		}
		t1 := a.zvar()
		lines = emitCopy(a, t1, v, origin)
		skip := a.label()
		for i := int64(0); i < k; i++ {
			// t1 reaching zero before k decrements means v < k: not equal.
			next := a.label()
			lines = append(lines, basic(semu.OpJumpNotZero, t1, next, origin))
			lines = append(lines, emitGoto(a, skip, origin)...)
			dec := basic(semu.OpDecrease, t1, "", origin)
			dec.Label = next
			lines = append(lines, dec)
		}
		lines = append(lines, basic(semu.OpJumpNotZero, t1, skip, origin))
		lines = append(lines, emitGoto(a, semu.CanonLabel(ins.Args[semu.ArgJEConstantLabel]), origin)...)
		neutral := basic(semu.OpNeutral, v, "", origin)
		neutral.Label = skip
		lines = append(lines, neutral)

	case semu.OpJumpEqualVariable:
		cmp := ins.Args[semu.ArgVariableName]
		cv, err := semu.ParseVar(cmp)
		if err != nil {
			return nil, semu.NewValidationError(origin, "invalid variableName %q", cmp)
		}
		lines, err = expandJumpEqualVariable(a, v, cv, semu.CanonLabel(ins.Args[semu.ArgJEVariableLabel]), origin)
		if err != nil {
			return nil, err
		}

	case semu.OpQuote:
		return nil, ErrQuoteNotExpandable

	case semu.OpInput:
		lines = []semu.Instruction{basic(semu.OpNeutral, v, "", origin)}

	default:
		return nil, semu.NewValidationError(origin, "unknown synthetic instruction %q", ins.SynOp)
	}

	if ins.Label != "" {
		if lines[0].Label != "" {
			// The first line already heads an internal loop (emitZero), so
			// ins's label goes on a neutral line placed in front of it.
			lead := basic(semu.OpNeutral, v, "", origin)
			lead.Label = ins.Label
			lines = append([]semu.Instruction{lead}, lines...)
		} else {
			lines[0].Label = ins.Label
		}
	}
	return lines, nil
}

// expandJumpEqualVariable implements the synchronized-decrement equality
// test described in §4.6: two preserved copies of v and cmp are drained in
// lockstep; whichever reaches zero first (or both together) decides
// equality without ever comparing values directly, since this machine has
// no equality primitive below this level.
func expandJumpEqualVariable(a *allocator, v, cmp semu.Var, targetLabel string, origin int) ([]semu.Instruction, error) {
	t1 := a.zvar()
	t2 := a.zvar()
	var lines []semu.Instruction
	lines = append(lines, emitCopy(a, t1, v, origin)...)
	lines = append(lines, emitCopy(a, t2, cmp, origin)...)

	cmpLabel := a.label()  // loop head: are t1 and t2 both drained?
	bodyLabel := a.label() // t1 != 0 landing pad
	bothLabel := a.label() // both nonzero: decrement in lockstep and loop
	skipLabel := a.label() // not equal: leave without jumping to targetLabel

	top := basic(semu.OpJumpNotZero, t1, bodyLabel, origin)
	top.Label = cmpLabel
	lines = append(lines, top)
	// t1 == 0 here: equal iff t2 is also 0.
	lines = append(lines, basic(semu.OpJumpNotZero, t2, skipLabel, origin))
	lines = append(lines, emitGoto(a, targetLabel, origin)...)

	// t1 != 0 here: equal is still possible only if t2 is also nonzero.
	body := basic(semu.OpJumpNotZero, t2, bothLabel, origin)
	body.Label = bodyLabel
	lines = append(lines, body)
	lines = append(lines, emitGoto(a, skipLabel, origin)...)

	decBoth := basic(semu.OpDecrease, t1, "", origin)
	decBoth.Label = bothLabel
	lines = append(lines, decBoth)
	lines = append(lines, basic(semu.OpDecrease, t2, "", origin))
	lines = append(lines, emitGoto(a, cmpLabel, origin)...)

	skip := basic(semu.OpNeutral, v, "", origin)
	skip.Label = skipLabel
	lines = append(lines, skip)
	return lines, nil
}
