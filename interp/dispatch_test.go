package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semu"
)

// S5 — Function composition: QUOTE applies a user function S (y <- x1 + 1)
// twice by nesting the call in its own argument expression.
func TestFunctionCompositionAppliesTwice(t *testing.T) {
	y := semu.Var{Kind: semu.KindY}
	successor := semu.Function{
		Name:       "S",
		UserString: "Successor",
		Instructions: []semu.Instruction{
			semu.NewSynthetic("", 1, semu.OpAssignment, y, map[string]string{semu.ArgAssignedVariable: "x1"}),
			semu.NewBasic("", 2, semu.OpIncrease, y, ""),
		},
	}

	prog := &semu.Program{
		Name:      "ComposeTwice",
		Functions: []semu.Function{successor},
		Instructions: []semu.Instruction{
			semu.NewSynthetic("", 1, semu.OpQuote, y, map[string]string{
				semu.ArgFunctionName: "S",
				semu.ArgFunctionArgs: "(S, x1)",
			}),
		},
	}

	result, err := NewRunner().Run(prog, []int64{7}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(9), result.Y)
}

func TestCalleeCyclesNeverReachCaller(t *testing.T) {
	y := semu.Var{Kind: semu.KindY}
	z1 := semu.Var{Kind: semu.KindZ, Index: 1}
	spins := semu.Function{
		Name: "Spin3",
		Instructions: []semu.Instruction{
			semu.NewBasic("", 1, semu.OpIncrease, z1, ""),
			semu.NewBasic("", 2, semu.OpIncrease, z1, ""),
			semu.NewBasic("", 3, semu.OpIncrease, z1, ""),
			semu.NewSynthetic("", 4, semu.OpAssignment, y, map[string]string{semu.ArgAssignedVariable: "z1"}),
		},
	}
	prog := &semu.Program{
		Functions: []semu.Function{spins},
		Instructions: []semu.Instruction{
			semu.NewSynthetic("", 1, semu.OpQuote, y, map[string]string{
				semu.ArgFunctionName: "Spin3",
				semu.ArgFunctionArgs: "",
			}),
		},
	}
	result, err := NewRunner().Run(prog, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Y)
	// QUOTE's own static cost (1) is the only charge, not Spin3's internal
	// cycles (3 increments + 17 for the ASSIGNMENT = 20).
	assert.Equal(t, int64(1), result.Cycles)
}

func TestBuiltinMinusNeverSaturates(t *testing.T) {
	v, ok := callBuiltin("Minus", []int64{3, 10})
	assert.True(t, ok)
	assert.Equal(t, int64(-7), v)
}

func TestBuiltinComparisons(t *testing.T) {
	v, _ := callBuiltin("Smaller_Than", []int64{3, 10})
	assert.Equal(t, int64(1), v)
	v, _ = callBuiltin("EQUAL", []int64{5, 5})
	assert.Equal(t, int64(1), v)
	v, _ = callBuiltin("NOT", []int64{0})
	assert.Equal(t, int64(1), v)
	v, _ = callBuiltin("AND", []int64{1, 1, 0})
	assert.Equal(t, int64(0), v)
	v, _ = callBuiltin("CONST0", nil)
	assert.Equal(t, int64(0), v)
}

func TestBuiltinMissingArgsDefaultToZero(t *testing.T) {
	v, ok := callBuiltin("Minus", []int64{5})
	assert.True(t, ok)
	assert.Equal(t, int64(5), v)
}

func TestUnknownFunctionIsRuntimeError(t *testing.T) {
	y := semu.Var{Kind: semu.KindY}
	prog := &semu.Program{Instructions: []semu.Instruction{
		semu.NewSynthetic("", 1, semu.OpQuote, y, map[string]string{semu.ArgFunctionName: "Nope"}),
	}}
	_, err := NewRunner().Run(prog, nil, 0)
	require.Error(t, err)
	var re *semu.RuntimeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, semu.ErrKindUnknownFunction, re.Kind)
}
