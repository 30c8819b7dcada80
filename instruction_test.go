package semu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyntheticCost(t *testing.T) {
	tests := []struct {
		name string
		op   SyntheticOp
		args map[string]string
		want int64
	}{
		{"zero variable", OpZeroVariable, nil, 17},
		{"assignment", OpAssignment, nil, 17},
		{"constant assignment k=3", OpConstantAssignment, map[string]string{ArgConstantValue: "3"}, 21},
		{"constant assignment k=0", OpConstantAssignment, map[string]string{ArgConstantValue: "0"}, 18},
		{"goto", OpGotoLabel, nil, 3},
		{"jump zero", OpJumpZero, nil, 6},
		{"jump equal constant k=3", OpJumpEqualConstant, map[string]string{ArgConstantValue: "3"}, 26},
		{"jump equal variable", OpJumpEqualVariable, nil, 49},
		{"quote", OpQuote, nil, 1},
		{"input", OpInput, nil, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SyntheticCost(tt.op, tt.args))
		})
	}
}

func TestBasicCost(t *testing.T) {
	assert.Equal(t, int64(1), BasicCost(OpIncrease))
	assert.Equal(t, int64(1), BasicCost(OpDecrease))
	assert.Equal(t, int64(1), BasicCost(OpNeutral))
	assert.Equal(t, int64(2), BasicCost(OpJumpNotZero))
}

func TestNewBasicPrecomputesCost(t *testing.T) {
	ins := NewBasic("L1", 1, OpJumpNotZero, Var{Kind: KindX, Index: 1}, "L1")
	assert.Equal(t, int64(2), ins.Cost)
	assert.True(t, ins.IsBasic)
	assert.Equal(t, "L1", ins.JumpLabel)
}

func TestNewSyntheticCopiesArgs(t *testing.T) {
	args := map[string]string{ArgConstantValue: "5"}
	ins := NewSynthetic("", 1, OpConstantAssignment, Var{Kind: KindY}, args)
	args[ArgConstantValue] = "mutated"
	assert.Equal(t, "5", ins.Args[ArgConstantValue], "NewSynthetic must defensively copy args")
	assert.Equal(t, int64(23), ins.Cost)
}
