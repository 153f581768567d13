package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent validation failures of form input.
// Every ValidationError unwraps to exactly one of these.
var (
	// ErrCardinality indicates the id count disagrees with the copy count,
	// or the copy count is out of bounds.
	ErrCardinality = errors.New("cardinality mismatch")

	// ErrMissingField indicates a required field is blank.
	ErrMissingField = errors.New("missing required field")

	// ErrTypeMismatch indicates a field could not be parsed as its type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrStateConflict indicates a contact for a different binder while one is pending.
	ErrStateConflict = errors.New("state conflict")

	// ErrUnknownBinder indicates a binder id that was never registered as a ligand.
	ErrUnknownBinder = errors.New("unknown binder")
)

// ValidationKind classifies a ValidationError.
type ValidationKind int

// Validation kinds.
const (
	KindCardinality ValidationKind = iota
	KindMissingField
	KindTypeMismatch
	KindStateConflict
	KindUnknownReference
)

// String returns the string representation.
func (k ValidationKind) String() string {
	switch k {
	case KindCardinality:
		return "cardinality"
	case KindMissingField:
		return "missing_field"
	case KindTypeMismatch:
		return "type_mismatch"
	case KindStateConflict:
		return "state_conflict"
	case KindUnknownReference:
		return "unknown_reference"
	default:
		return "unknown"
	}
}

func (k ValidationKind) sentinel() error {
	switch k {
	case KindCardinality:
		return ErrCardinality
	case KindMissingField:
		return ErrMissingField
	case KindTypeMismatch:
		return ErrTypeMismatch
	case KindStateConflict:
		return ErrStateConflict
	case KindUnknownReference:
		return ErrUnknownBinder
	default:
		return nil
	}
}

// ValidationError is returned by form handlers. The session passed to the
// handler is left untouched whenever one is returned.
type ValidationError struct {
	Kind    ValidationKind
	Field   string
	Message string
}

// NewValidationError creates a ValidationError.
func NewValidationError(kind ValidationKind, field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements error.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the sentinel for the error's kind.
func (e *ValidationError) Unwrap() error {
	return e.Kind.sentinel()
}

// AsValidationError extracts a ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
