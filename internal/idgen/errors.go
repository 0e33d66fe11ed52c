package idgen

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every error returned for a missing identifying field.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError names the field that was missing or empty.
type InvalidInputError struct {
	Field string
}

func (e *InvalidInputError) Error() string {
	if e == nil || e.Field == "" {
		return ErrInvalidInput.Error()
	}
	return fmt.Sprintf("invalid input: %s is required", e.Field)
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

func missing(field string) error { return &InvalidInputError{Field: field} }
