package algo

import (
	"errors"
	"fmt"
)

// Layout precondition failures. All are detected before any geometry is computed.
var (
	ErrInsufficientAxes  = errors.New("a radar chart needs at least 3 axes")
	ErrMissingCategory   = errors.New("score set has no entry for category")
	ErrDuplicateCategory = errors.New("category appears more than once")
	ErrInvalidScore      = errors.New("score must be within [0, 100]")
	ErrInvalidGeometry   = errors.New("invalid chart geometry")
)

// LayoutError ties a precondition failure to the input field that caused it.
type LayoutError struct {
	Field string // Category name or option name
	Err   error
}

func (e *LayoutError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %q", e.Err, e.Field)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

func newLayoutError(field string, err error) *LayoutError {
	return &LayoutError{Field: field, Err: err}
}
