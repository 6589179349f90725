package api

import (
	"errors"
	"net/http"

	"github.com/vajra-labs/vajra-auth/internal/domain"
	"github.com/vajra-labs/vajra-auth/internal/service/account"
	"github.com/vajra-labs/vajra-auth/internal/service/auth"
	"github.com/vajra-labs/vajra-auth/internal/service/ledger"
	"github.com/vajra-labs/vajra-auth/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, account.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Bad request errors. A duplicate email deliberately maps to the generic
	// 400 rather than 409, matching the service's established behavior.
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, store.ErrInvalidEntity),
		domain.IsValidationError(err):
		return http.StatusBadRequest

	// Dependency down
	case errors.Is(err, store.ErrUnavailable):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message for
// the error. Internal detail stays in the logs.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "Server error"
	}

	switch {
	case errors.Is(err, account.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Token is not valid"

	case errors.Is(err, store.ErrAccountNotFound):
		return "User not found"

	case errors.Is(err, store.ErrEmailExists):
		return "User already exists"

	case errors.Is(err, ledger.ErrInvalidAmount):
		return "Invalid token amount"

	case errors.Is(err, store.ErrInvalidEntity), domain.IsValidationError(err):
		return "Invalid request data"

	case errors.Is(err, store.ErrUnavailable):
		return "Database not connected"

	default:
		return "Server error"
	}
}
