package validators

import (
	"errors"
	"strings"

	"github.com/civilci/intake-portal/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is matched by every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports every rejected field of an input.
type ValidationError struct {
	Fields []models.FieldError
}

// Error lists the rejected fields, e.g. "validation failed: name: too short".
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidation) true for any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Add records a rejected field.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, models.FieldError{Field: field, Message: message})
}

// OrNil returns e when at least one field was rejected and nil otherwise.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// NewFieldError builds a *ValidationError for a single field.
func NewFieldError(field, message string) *ValidationError {
	e := &ValidationError{}
	e.Add(field, message)
	return e
}
