package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when a caller could not be authenticated
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when a caller is not allowed to perform an action
	ErrForbidden = errors.New("forbidden")
)

// Ledger errors
var (
	// ErrInvalidCredentials is returned on a failed login. It does not say
	// whether the email or the password was wrong.
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	// ErrDuplicateAccount is returned when an email is already registered.
	ErrDuplicateAccount = fmt.Errorf("email already registered: %w", ErrAlreadyExists)
	// ErrUnknownAccount is returned when an email does not resolve to an account.
	ErrUnknownAccount = errors.New("email isn't linked to an account")
	// ErrAccountNotFound is returned when an account addressed directly by
	// email, rather than as a transfer party, does not exist.
	ErrAccountNotFound = fmt.Errorf("account not found: %w", ErrNotFound)
	// ErrInsufficientFunds is returned when a sender cannot cover a transfer.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// NewValidationError returns an error wrapping ErrValidation with a message
// that is safe to show to clients.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// ValidationError carries a client facing reason for rejected input.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func (e *ValidationError) Unwrap() error { return ErrValidation }
