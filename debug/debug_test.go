package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semu"
	"semu/interp"
)

func successorFunc() *semu.Program {
	return &semu.Program{
		Instructions: []semu.Instruction{
			semu.NewBasic("", 1, semu.OpIncrease, semu.Var{Kind: semu.KindY}, ""),
			semu.NewBasic("", 2, semu.OpIncrease, semu.Var{Kind: semu.KindY}, ""),
		},
	}
}

// Property 6 — step-forward then step-backward restores the exact frame.
func TestStepForwardThenBackwardRestoresState(t *testing.T) {
	session, err := Initialize(successorFunc(), nil, 0, interp.NewRunner(), 0)
	require.NoError(t, err)

	before := session.Current().Snapshot()
	more, err := session.StepForward()
	require.NoError(t, err)
	assert.True(t, more)
	assert.NotEqual(t, before.Vars["y"], session.Current().Vars["y"])

	ok := session.StepBackward()
	assert.True(t, ok)
	assert.Equal(t, before.Vars, session.Current().Vars)
	assert.Equal(t, before.PC, session.Current().PC)
	assert.Equal(t, before.Cycles, session.Current().Cycles)
	assert.False(t, session.Finished())
}

func TestStepBackwardAtRootReturnsFalse(t *testing.T) {
	session, err := Initialize(successorFunc(), nil, 0, interp.NewRunner(), 0)
	require.NoError(t, err)
	assert.False(t, session.StepBackward())
}

func TestSessionReportsFinished(t *testing.T) {
	session, err := Initialize(successorFunc(), nil, 0, interp.NewRunner(), 0)
	require.NoError(t, err)
	for !session.Finished() {
		_, err := session.StepForward()
		require.NoError(t, err)
	}
	assert.Equal(t, int64(2), session.Current().Get(semu.Var{Kind: semu.KindY}))

	more, err := session.StepForward()
	require.NoError(t, err)
	assert.False(t, more, "stepping a finished session is a no-op, not an error")
}

func TestStepCeilingAborts(t *testing.T) {
	z1 := semu.Var{Kind: semu.KindZ, Index: 1}
	prog := &semu.Program{
		Instructions: []semu.Instruction{
			labeled(semu.NewBasic("", 1, semu.OpIncrease, z1, ""), "L1"),
			semu.NewBasic("", 2, semu.OpJumpNotZero, z1, "L1"),
		},
		MaxWorkVarIndex: 1,
	}
	session, err := Initialize(prog, nil, 0, interp.NewRunner(), 0)
	require.NoError(t, err)

	var stepErr error
	for i := 0; i < MaxSteps+1; i++ {
		_, stepErr = session.StepForward()
		if stepErr != nil {
			break
		}
	}
	assert.ErrorIs(t, stepErr, ErrStepCeiling)
}

func labeled(ins semu.Instruction, label string) semu.Instruction {
	ins.Label = label
	return ins
}
