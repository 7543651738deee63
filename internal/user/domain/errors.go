package domain

import (
	"fmt"

	"github.com/allisson/users/internal/errors"
)

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrInvalidLogin indicates the login identifier or password did not match.
	ErrInvalidLogin = errors.Wrap(errors.ErrUnauthorized, "invalid login or password")
)

// UniqueConstraintError indicates an email or username collision with an
// existing user. Field names the conflicting attribute.
type UniqueConstraintError struct {
	Field string
}

// Error implements the error interface.
func (e *UniqueConstraintError) Error() string {
	return fmt.Sprintf("%s is already taken", e.Field)
}

// Unwrap makes the error match errors.ErrConflict in errors.Is checks.
func (e *UniqueConstraintError) Unwrap() error {
	return errors.ErrConflict
}

// NewUniqueConstraintError creates a UniqueConstraintError for the given field.
func NewUniqueConstraintError(field string) *UniqueConstraintError {
	return &UniqueConstraintError{Field: field}
}
