package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/vajra-labs/vajra-auth/internal/service/auth"
)

// MockSessionService implements auth.SessionService for testing.
type MockSessionService struct {
	// GenerateTokenFn allows test cases to mock the GenerateToken behavior
	GenerateTokenFn func(ctx context.Context, accountID uuid.UUID) (string, error)

	// ValidateTokenFn allows test cases to mock the ValidateToken behavior
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token       string
	Err         error
	ValidateErr error
	Claims      *auth.Claims
}

// Ensure MockSessionService implements auth.SessionService
var _ auth.SessionService = (*MockSessionService)(nil)

// GenerateToken implements the auth.SessionService interface.
func (m *MockSessionService) GenerateToken(
	ctx context.Context,
	accountID uuid.UUID,
) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, accountID)
	}
	return m.Token, m.Err
}

// ValidateToken implements the auth.SessionService interface.
func (m *MockSessionService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}
