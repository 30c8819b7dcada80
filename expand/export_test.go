package expand

import "semu"

// Exported-for-test aliases so expand_external_test.go (package expand_test,
// which also imports semu/interp) can reach these unexported helpers without
// creating an import cycle between expand and interp.
var (
	NewAllocatorForTest  = newAllocator
	EmitCopyForTest      = emitCopy
	AssignIndicesForTest = assignIndices
)

func AssignIndicesCopyForTest(lines []semu.Instruction) []semu.Instruction {
	out := append([]semu.Instruction(nil), lines...)
	AssignIndicesForTest(out)
	return out
}

func (a *allocator) NextZForTest() int {
	return a.nextZ
}
