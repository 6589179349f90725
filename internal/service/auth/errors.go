package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token is malformed or its signature
	// doesn't match. Validation is binary; every sub-cause collapses here.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrExpiredToken indicates the token's expiry has passed.
	ErrExpiredToken = errors.New("session token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("session token is missing")
)
