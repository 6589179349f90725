package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionService defines operations for minting and validating the signed,
// time-bounded session tokens that prove prior authentication.
type SessionService interface {
	// GenerateToken creates a signed session token bound to the given account.
	// The token carries the account ID as its subject and expires a fixed
	// lifetime after issuance.
	GenerateToken(ctx context.Context, accountID uuid.UUID) (string, error)

	// ValidateToken verifies the provided token's signature and expiry and
	// extracts the claims. Returns ErrExpiredToken when the expiry has passed
	// and ErrInvalidToken for every other failure (malformed structure, bad
	// signature, wrong algorithm). There are no partial-trust states.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the validated contents of a session token.
type Claims struct {
	// AccountID is the unique identifier of the account the token was issued for.
	AccountID uuid.UUID `json:"uid,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
