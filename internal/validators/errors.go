package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrValidation is matched by every error describing invalid input.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError lists the failing fields of a value, keyed by JSON field
// name.
type ValidationError struct {
	Fields map[string]string
}

// Error renders the failing fields in name order, e.g.
// "pages must contain at least 1 item; title is required".
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return strings.Join(parts, "; ")
}

// Unwrap makes errors.Is(err, ErrValidation) hold.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewFieldError builds a single-field [ValidationError].
func NewFieldError(field, msg string) error {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
