package preset

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation reports a field value outside its declared range.
	ErrValidation = errors.New("preset: value out of range")

	// ErrMissingField reports a schema parameter absent from a document
	// on encode. Every parameter must be explicitly present; the codec
	// never defaults.
	ErrMissingField = errors.New("preset: missing parameter")

	// ErrUnknownField reports a document parameter the schema does not
	// define.
	ErrUnknownField = errors.New("preset: unknown parameter")
)

// FieldError names the offending parameter and value for a range
// violation, on either decode or encode.
type FieldError struct {
	Name  string
	Value int
	Min   int
	Max   int
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("preset: %s = %d outside range %d-%d", e.Name, e.Value, e.Min, e.Max)
}

func (e *FieldError) Unwrap() error { return ErrValidation }
