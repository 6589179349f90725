package domain

import "errors"

// ErrValidation is the generic kind for all entity validation failures.
// Field-specific errors in this package are matched individually by
// IsValidationError so callers can treat them as one class.
var ErrValidation = errors.New("validation failed")

// IsValidationError reports whether err is any of the domain validation errors.
func IsValidationError(err error) bool {
	validationErrors := []error{
		ErrValidation,
		ErrEmptyAccountID,
		ErrEmptyName,
		ErrEmptyCompany,
		ErrEmptyEmail,
		ErrEmptyPassword,
		ErrEmptyHashedPassword,
		ErrEmptyExternalID,
		ErrNegativeBalance,
	}
	for _, verr := range validationErrors {
		if errors.Is(err, verr) {
			return true
		}
	}
	return false
}
