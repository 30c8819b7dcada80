// Package expand implements the one-level macro expander (§4.6): it
// rewrites every synthetic instruction in a program's main sequence into an
// equivalent sequence of basic instructions, allocating fresh labels and
// work variables as it goes.
package expand

import (
	"fmt"

	"semu"
)

// allocator hands out fresh labels (L{n}) and work variables (Z{n}) above
// a program's existing maxima, and tracks how many of each it has used so
// the caller can report exact bookkeeping (§4.6 "aggregate new labels /
// work vars used... MUST be exact").
type allocator struct {
	nextLabel int
	nextZ     int

	labelsUsed int
	zUsed      int
}

func newAllocator(maxLabel, maxZ int) *allocator {
	return &allocator{nextLabel: maxLabel + 1, nextZ: maxZ + 1}
}

func (a *allocator) label() string {
	l := fmt.Sprintf("L%d", a.nextLabel)
	a.nextLabel++
	a.labelsUsed++
	return l
}

func (a *allocator) zvar() semu.Var {
	v := semu.Var{Kind: semu.KindZ, Index: a.nextZ}
	a.nextZ++
	a.zUsed++
	return v
}
