package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUnavailable is returned when the store's backing database cannot be
	// reached. Callers surface it as a distinct unavailable condition and do
	// not retry internally.
	ErrUnavailable = errors.New("store unavailable")

	// ErrAccountNotFound indicates that the requested account does not exist.
	ErrAccountNotFound = fmt.Errorf("%w: account", ErrNotFound)

	// ErrEmailExists indicates that an account with the given email already
	// exists. Returned on create when the email unique index is violated.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
