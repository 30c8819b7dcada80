package semu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxExpansionDepth(t *testing.T) {
	basicOnly := &Program{Instructions: []Instruction{
		NewBasic("", 1, OpIncrease, Var{Kind: KindY}, ""),
	}}
	assert.Equal(t, 0, basicOnly.MaxExpansionDepth())

	withSynthetic := &Program{Instructions: []Instruction{
		NewSynthetic("", 1, OpZeroVariable, Var{Kind: KindY}, nil),
	}}
	assert.Equal(t, 1, withSynthetic.MaxExpansionDepth())

	withQuote := &Program{Instructions: []Instruction{
		NewSynthetic("", 1, OpQuote, Var{Kind: KindY}, map[string]string{ArgFunctionName: "CONST0"}),
	}}
	assert.Equal(t, 0, withQuote.MaxExpansionDepth())

	quoteInFunction := &Program{
		Instructions: []Instruction{NewBasic("", 1, OpIncrease, Var{Kind: KindY}, "")},
		Functions: []Function{{
			Name: "F",
			Instructions: []Instruction{
				NewSynthetic("", 1, OpQuote, Var{Kind: KindY}, map[string]string{ArgFunctionName: "CONST0"}),
			},
		}},
	}
	assert.Equal(t, 0, quoteInFunction.MaxExpansionDepth(), "a QUOTE anywhere, even nested in a function, caps depth at 0")
}

func TestFunctionByName(t *testing.T) {
	p := &Program{Functions: []Function{{Name: "S", UserString: "Successor"}}}
	fn, ok := p.FunctionByName("S")
	assert.True(t, ok)
	assert.Equal(t, "Successor", fn.UserString)

	_, ok = p.FunctionByName("missing")
	assert.False(t, ok)
}
