// Package ledger adjusts and reads account credit balances for callers
// identified by a session token.
package ledger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vajra-labs/vajra-auth/internal/domain"
	"github.com/vajra-labs/vajra-auth/internal/platform/logger"
	"github.com/vajra-labs/vajra-auth/internal/platform/metrics"
	"github.com/vajra-labs/vajra-auth/internal/service/auth"
	"github.com/vajra-labs/vajra-auth/internal/store"
)

// ErrInvalidAmount is returned when a balance adjustment is zero or negative.
var ErrInvalidAmount = errors.New("amount must be a positive integer")

// Service implements balance mutation and profile reads. The caller's
// identity is resolved from the bearer token on every call; an empty token
// yields auth.ErrMissingToken and token errors from the session service
// propagate unchanged.
type Service struct {
	accounts store.AccountStore
	sessions auth.SessionService
	logger   *slog.Logger
}

// NewService creates a ledger Service with the given dependencies.
// If logger is nil, the process default is used.
func NewService(
	accounts store.AccountStore,
	sessions auth.SessionService,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		accounts: accounts,
		sessions: sessions,
		logger:   logger.With(slog.String("component", "ledger_service")),
	}
}

// AdjustBalance atomically adds amount to the token holder's balance and
// returns the new balance. The amount must be positive; zero and negative
// amounts are rejected with ErrInvalidAmount before the store is touched.
// Returns store.ErrAccountNotFound if the account vanished since the token
// was issued.
func (s *Service) AdjustBalance(ctx context.Context, token string, amount int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if token == "" {
		return 0, auth.ErrMissingToken
	}

	claims, err := s.sessions.ValidateToken(ctx, token)
	if err != nil {
		return 0, err
	}

	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	newBalance, err := s.accounts.IncrementBalance(ctx, claims.AccountID, amount)
	if err != nil {
		return 0, err
	}

	metrics.BalanceAdjustments.Inc()
	log.Info("balance adjusted",
		"account_id", claims.AccountID,
		"amount", amount,
		"new_balance", newBalance)

	return newBalance, nil
}

// GetProfile returns the public profile of the token holder.
// Returns store.ErrAccountNotFound if the account vanished since the token
// was issued.
func (s *Service) GetProfile(ctx context.Context, token string) (domain.Profile, error) {
	if token == "" {
		return domain.Profile{}, auth.ErrMissingToken
	}

	claims, err := s.sessions.ValidateToken(ctx, token)
	if err != nil {
		return domain.Profile{}, err
	}

	account, err := s.accounts.GetByID(ctx, claims.AccountID)
	if err != nil {
		return domain.Profile{}, err
	}

	return account.Profile(), nil
}
