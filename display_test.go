package semu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplaySuccessor(t *testing.T) {
	p := &Program{
		Name:      "Successor",
		InputVars: nil,
		LabelMap:  map[string]int{},
		Instructions: []Instruction{
			NewBasic("", 1, OpIncrease, Var{Kind: KindY}, ""),
		},
	}
	out := Display(p, 0)
	assert.Contains(t, out, "Program: Successor")
	assert.Contains(t, out, "Inputs: ")
	assert.Contains(t, out, "#1 (B)")
	assert.Contains(t, out, "y <- y + 1")
	assert.Contains(t, out, "(1)")
}

func TestDisplayShowsOriginAtDepthOne(t *testing.T) {
	ins := NewBasic("", 1, OpIncrease, Var{Kind: KindY}, "")
	ins.Origin = 3
	p := &Program{Name: "P", Instructions: []Instruction{ins}}

	assert.NotContains(t, Display(p, 0), "<<<", "origin suffix must not appear at depth 0")
	assert.True(t, strings.Contains(Display(p, 1), "<<< #3"))
}

func TestDisplayAppendsExitOnlyWhenReferenced(t *testing.T) {
	referencing := &Program{
		Name:     "P",
		LabelMap: map[string]int{},
		Instructions: []Instruction{
			NewBasic("", 1, OpJumpNotZero, Var{Kind: KindX, Index: 1}, ExitLabel),
		},
	}
	assert.Contains(t, Display(referencing, 0), "Labels: EXIT")

	notReferencing := &Program{
		Name:         "P",
		LabelMap:     map[string]int{},
		Instructions: []Instruction{NewBasic("", 1, OpNeutral, Var{Kind: KindY}, "")},
	}
	assert.NotContains(t, Display(notReferencing, 0), "EXIT")
}
