// Package usecase implements the business logic for the identity feature.
package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound is returned when no account matches the login identifier.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create an account
	// with an email that is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when the password does not match the
	// stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a single signup/login field that violates its
// format rule. Field holds the JSON field name as the client sent it.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
