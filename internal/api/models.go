package api

import (
	"github.com/google/uuid"
	"github.com/vajra-labs/vajra-auth/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the registration endpoint.
// Every field is required but none is format-checked: any non-empty email is
// accepted and stored verbatim, and uniqueId carries no uniqueness constraint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Company  string `json:"company"  validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	UniqueID string `json:"uniqueId" validate:"required"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse defines the successful response for registration.
// No session token is minted at registration; callers log in for one.
type RegisterResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

// ProfileResponse is the public account view returned by login and the
// profile endpoint. The credit balance is serialized as "tokens", which is
// unrelated to the session token credential.
type ProfileResponse struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Tokens int64  `json:"tokens"`
}

// newProfileResponse converts a domain profile into its wire shape.
func newProfileResponse(p domain.Profile) ProfileResponse {
	return ProfileResponse{
		Name:   p.Name,
		Email:  p.Email,
		Tokens: p.Balance,
	}
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Token string          `json:"token"`
	User  ProfileResponse `json:"user"`
}

// UpdateTokensRequest defines the payload for the balance adjustment
// endpoint. The amount must be a positive integer.
type UpdateTokensRequest struct {
	Amount int64 `json:"amount"`
}

// UpdateTokensResponse defines the successful response for a balance
// adjustment, carrying the post-increment balance.
type UpdateTokensResponse struct {
	Tokens  int64  `json:"tokens"`
	Message string `json:"message"`
}
