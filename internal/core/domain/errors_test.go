package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrCardinality", ErrCardinality},
		{"ErrMissingField", ErrMissingField},
		{"ErrTypeMismatch", ErrTypeMismatch},
		{"ErrStateConflict", ErrStateConflict},
		{"ErrUnknownBinder", ErrUnknownBinder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestValidationError_UnwrapsToSentinel(t *testing.T) {
	tests := []struct {
		kind     ValidationKind
		sentinel error
	}{
		{KindCardinality, ErrCardinality},
		{KindMissingField, ErrMissingField},
		{KindTypeMismatch, ErrTypeMismatch},
		{KindStateConflict, ErrStateConflict},
		{KindUnknownReference, ErrUnknownBinder},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := NewValidationError(tt.kind, "field", "boom")
			assert.True(t, errors.Is(err, tt.sentinel))

			wrapped := fmt.Errorf("adding: %w", err)
			assert.True(t, errors.Is(wrapped, tt.sentinel))
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError(KindTypeMismatch, "residue", "residue must be a number, got %q", "x")
	assert.Equal(t, `residue: residue must be a number, got "x"`, err.Error())

	noField := NewValidationError(KindMissingField, "", "no contacts to finalize")
	assert.Equal(t, "no contacts to finalize", noField.Error())
}

func TestAsValidationError(t *testing.T) {
	err := fmt.Errorf("wrap: %w", NewValidationError(KindStateConflict, "binder", "x"))

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, KindStateConflict, ve.Kind)

	_, ok = AsValidationError(errors.New("plain"))
	assert.False(t, ok)
}

func TestValidationKind_String(t *testing.T) {
	assert.Equal(t, "cardinality", KindCardinality.String())
	assert.Equal(t, "unknown", ValidationKind(42).String())
}
