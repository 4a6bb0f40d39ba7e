package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
//
// ErrInvalidInput is raised locally when a registry entity is constructed or
// mutated with values that violate its contract; it never reaches the
// network. The remaining sentinels form the closed taxonomy of registry-side
// failures, keyed by the HTTP status the ОРД API answered with. Callers
// pattern-match on the sentinel, never on a raw status code.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal server error")
	ErrRegistry     = errors.New("registry error")
)

// InvalidInputError reports a single rejected field with the value that was
// rejected. Use errors.Is(err, ErrInvalidInput) for simple checks, or
// errors.As(err, &ierr) to access the field name and value.
type InvalidInputError struct {
	Field string
	Value any
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrInvalidInput.Error(), e.Field, e.Value)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// NewInvalidInput creates an InvalidInputError for the given field and
// rejected value.
func NewInvalidInput(field string, value any) *InvalidInputError {
	return &InvalidInputError{Field: field, Value: value}
}

// ValidationError provides programmatic access to field-level validation
// failures aggregated over a whole entity or request. It unwraps to
// ErrInvalidInput so both error shapes answer to the same sentinel.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// MsgRequired is the standard message for missing required fields.
const MsgRequired = "is required"
