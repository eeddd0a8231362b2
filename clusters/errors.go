package clusters

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every validation failure returned from this
// package. Use errors.As with *InputError to find out which precondition failed.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes a violated precondition. Row is the zero-based index
// of the offending estimate or record, or -1 when a parameter is at fault.
type InputError struct {
	Row    int
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%s: %s: %s", ErrInvalidInput, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: row %d: %s: %s", ErrInvalidInput, e.Row, e.Field, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

func paramError(field, format string, args ...interface{}) *InputError {
	return &InputError{Row: -1, Field: field, Reason: fmt.Sprintf(format, args...)}
}

func rowError(row int, field, format string, args ...interface{}) *InputError {
	return &InputError{Row: row, Field: field, Reason: fmt.Sprintf(format, args...)}
}
