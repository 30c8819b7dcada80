package expand

import "semu"

// basic builds a basic instruction carrying origin ancestry, with Index and
// Label left for the caller to fill in once the whole sequence is laid out
// (see assignIndices in expand.go).
func basic(op semu.BasicOp, v semu.Var, jumpLabel string, origin int) semu.Instruction {
	ins := semu.NewBasic("", 0, op, v, jumpLabel)
	ins.Origin = origin
	return ins
}

// emitGoto produces an unconditional jump to target. The ISA has no
// unconditional-jump primitive, so §4.6's GOTO_LABEL recipe is reused as a
// building block everywhere an unconditional jump is needed: increment a
// brand new work variable (guaranteed zero, hence guaranteed to make the
// jump test true) and branch on it.
func emitGoto(a *allocator, target string, origin int) []semu.Instruction {
	g := a.zvar()
	return []semu.Instruction{
		basic(semu.OpIncrease, g, "", origin),
		basic(semu.OpJumpNotZero, g, target, origin),
	}
}

// emitZero drains v to zero regardless of its starting value, using the
// textbook decrement-until-zero idiom. This is the one place genuinely
// variable-length looping is unavoidable: there is no way to set a
// register to a known value in O(1) basic instructions when its current
// value is unknown.
func emitZero(a *allocator, v semu.Var, origin int) []semu.Instruction {
	lz := a.label()
	dec := basic(semu.OpDecrease, v, "", origin)
	dec.Label = lz
	jnz := basic(semu.OpJumpNotZero, v, lz, origin)
	return []semu.Instruction{dec, jnz}
}

// emitCopy copies src into dest while leaving src unchanged, via a fresh
// temp t. Precondition: dest is already zero (callers that can't guarantee
// this — i.e. dest is a pre-existing program variable rather than a fresh
// temp — must emitZero(dest) first). This fixes a defect in the
// textbook presentation of the algorithm, which falls through into the
// drain-and-restore body even when src is already zero, corrupting dest;
// here an explicit unconditional jump skips the body entirely in that
// case.
func emitCopy(a *allocator, dest, src semu.Var, origin int) []semu.Instruction {
	t := a.zvar()
	body := a.label()
	restore := a.label()
	done := a.label()

	var out []semu.Instruction
	out = append(out, basic(semu.OpJumpNotZero, src, body, origin))
	out = append(out, emitGoto(a, done, origin)...)

	first := basic(semu.OpDecrease, src, "", origin)
	first.Label = body
	out = append(out,
		first,
		basic(semu.OpIncrease, dest, "", origin),
		basic(semu.OpIncrease, t, "", origin),
		basic(semu.OpJumpNotZero, src, body, origin),
	)

	firstRestore := basic(semu.OpDecrease, t, "", origin)
	firstRestore.Label = restore
	out = append(out,
		firstRestore,
		basic(semu.OpIncrease, src, "", origin),
		basic(semu.OpJumpNotZero, t, restore, origin),
	)

	last := basic(semu.OpNeutral, dest, "", origin)
	last.Label = done
	out = append(out, last)
	return out
}
