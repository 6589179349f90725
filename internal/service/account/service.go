// Package account orchestrates registration and login on top of the
// credential store, the password hasher, and the session token service.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vajra-labs/vajra-auth/internal/domain"
	"github.com/vajra-labs/vajra-auth/internal/platform/logger"
	"github.com/vajra-labs/vajra-auth/internal/platform/metrics"
	"github.com/vajra-labs/vajra-auth/internal/service/auth"
	"github.com/vajra-labs/vajra-auth/internal/store"
)

// ErrInvalidCredentials is returned when login fails. An unknown email and a
// wrong password produce this same error so the caller cannot tell which part
// failed. Do not split it into separate kinds.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginResult is the outcome of a successful login: a freshly minted session
// token plus the account's public profile.
type LoginResult struct {
	Token   string
	Profile domain.Profile
}

// Service implements account registration and authentication.
type Service struct {
	accounts store.AccountStore
	hasher   auth.PasswordHasher
	sessions auth.SessionService
	logger   *slog.Logger
}

// NewService creates an account Service with the given dependencies.
// If logger is nil, the process default is used.
func NewService(
	accounts store.AccountStore,
	hasher auth.PasswordHasher,
	sessions auth.SessionService,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		accounts: accounts,
		hasher:   hasher,
		sessions: sessions,
		logger:   logger.With(slog.String("component", "account_service")),
	}
}

// Register creates a new account with a zero balance and returns its ID.
// Returns a domain validation error when a required field is empty or
// malformed, store.ErrEmailExists when the email is taken, and the store's
// error otherwise. The password is hashed before the account ever reaches
// the store; a failed hash never results in an insert.
func (s *Service) Register(
	ctx context.Context,
	name, company, email, password, externalID string,
) (uuid.UUID, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	account, err := domain.NewAccount(name, company, email, password, externalID)
	if err != nil {
		return uuid.Nil, err
	}

	// Pre-check for an existing email. The store's unique index is the
	// backstop for the race between this check and the insert.
	_, err = s.accounts.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return uuid.Nil, store.ErrEmailExists
	case errors.Is(err, store.ErrAccountNotFound):
		// Email is free.
	default:
		return uuid.Nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hashed, err := s.hasher.Hash(account.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		return uuid.Nil, fmt.Errorf("failed to hash password: %w", err)
	}
	account.HashedPassword = hashed
	account.Password = ""

	if err := s.accounts.Create(ctx, account); err != nil {
		return uuid.Nil, err
	}

	log.Info("account registered", "account_id", account.ID)
	return account.ID, nil
}

// Login authenticates the email/password pair and mints a session token.
// Both an unknown email and a password mismatch return ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			metrics.AuthFailures.Inc()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if err := s.hasher.Compare(account.HashedPassword, password); err != nil {
		metrics.AuthFailures.Inc()
		return nil, ErrInvalidCredentials
	}

	token, err := s.sessions.GenerateToken(ctx, account.ID)
	if err != nil {
		log.Error("failed to generate session token", "error", err, "account_id", account.ID)
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	metrics.AuthSuccesses.Inc()
	metrics.TokensIssued.Inc()
	log.Info("account logged in", "account_id", account.ID)

	return &LoginResult{
		Token:   token,
		Profile: account.Profile(),
	}, nil
}
