package semu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorFormatting(t *testing.T) {
	withIndex := NewParseError(3, "bad variable name %q", "w9")
	assert.Equal(t, "parse error at instruction 3: bad variable name \"w9\"", withIndex.Error())

	withoutIndex := NewParseError(0, "program name is missing")
	assert.Equal(t, "parse error: program name is missing", withoutIndex.Error())
}

func TestValidationErrorFormatting(t *testing.T) {
	err := NewValidationError(5, "undefined label %q", "L9")
	assert.Equal(t, "validation error at instruction 5: undefined label \"L9\"", err.Error())
}

func TestRuntimeErrorKind(t *testing.T) {
	err := NewRuntimeError(ErrKindCycleLimitExceeded, "exceeded cycle budget of %d", 100)
	assert.Equal(t, ErrKindCycleLimitExceeded, err.Kind)
	assert.Equal(t, "exceeded cycle budget of 100", err.Error())
}
