package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semu"
)

// Property 5 — expansion is idempotent at depth 1: expanding an
// already-expanded (all-basic) program is a no-op on its instruction shape.
func TestExpansionIdempotentAtDepthOne(t *testing.T) {
	y := semu.Var{Kind: semu.KindY}
	p := &semu.Program{Instructions: []semu.Instruction{
		semu.NewSynthetic("", 1, semu.OpZeroVariable, y, nil),
	}}
	once, err := Expand(p, 1)
	require.NoError(t, err)
	twice, err := Expand(once, 1)
	require.NoError(t, err)
	assert.Equal(t, once.Instructions, twice.Instructions)
}

func TestExpandDepthZeroReturnsUnchangedCopy(t *testing.T) {
	y := semu.Var{Kind: semu.KindY}
	p := &semu.Program{Instructions: []semu.Instruction{
		semu.NewSynthetic("", 1, semu.OpZeroVariable, y, nil),
	}}
	out, err := Expand(p, 0)
	require.NoError(t, err)
	assert.Equal(t, p.Instructions, out.Instructions)
}

func TestExpandRejectsQuote(t *testing.T) {
	y := semu.Var{Kind: semu.KindY}
	p := &semu.Program{Instructions: []semu.Instruction{
		semu.NewSynthetic("", 1, semu.OpQuote, y, map[string]string{semu.ArgFunctionName: "CONST0"}),
	}}
	_, err := Expand(p, 1)
	assert.ErrorIs(t, err, ErrQuoteNotExpandable)
}

func TestExpandRejectsQuoteInFunctionBody(t *testing.T) {
	y := semu.Var{Kind: semu.KindY}
	p := &semu.Program{
		Instructions: []semu.Instruction{semu.NewBasic("", 1, semu.OpIncrease, y, "")},
		Functions: []semu.Function{{
			Name: "F",
			Instructions: []semu.Instruction{
				semu.NewSynthetic("", 1, semu.OpQuote, y, map[string]string{semu.ArgFunctionName: "CONST0"}),
			},
		}},
	}
	_, err := Expand(p, 1)
	assert.ErrorIs(t, err, ErrQuoteNotExpandable)
}
