// Package store provides abstractions and errors for data persistence.
package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/vajra-labs/vajra-auth/internal/domain"
)

// AccountStore defines the interface for account persistence.
type AccountStore interface {
	// Create saves a new account to the store. The caller must have hashed the
	// password; accounts with a plaintext password still set are rejected.
	// Returns ErrEmailExists if an account with the same email already exists.
	// Email uniqueness is backstopped by a unique index in the store, so a
	// concurrent duplicate insert also surfaces as ErrEmailExists.
	Create(ctx context.Context, account *domain.Account) error

	// GetByID retrieves an account by its unique ID.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// GetByEmail retrieves an account by its email address. The lookup is
	// case-sensitive, matching how emails are stored.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)

	// IncrementBalance atomically adds amount to the account's balance and
	// returns the new balance. The increment happens as a single statement in
	// the store so concurrent increments serialize without lost updates.
	// The caller is responsible for rejecting non-positive amounts before the
	// store is reached.
	// Returns ErrAccountNotFound if the account does not exist.
	IncrementBalance(ctx context.Context, id uuid.UUID, amount int64) (int64, error)
}
