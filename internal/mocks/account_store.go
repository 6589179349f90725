package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/vajra-labs/vajra-auth/internal/domain"
	"github.com/vajra-labs/vajra-auth/internal/store"
)

// MockAccountStore implements store.AccountStore for testing.
// The default implementation is an in-memory map guarded by a mutex, so the
// atomic-increment contract holds under concurrent use.
type MockAccountStore struct {
	// Function fields for customizable behavior
	CreateFn           func(ctx context.Context, account *domain.Account) error
	GetByEmailFn       func(ctx context.Context, email string) (*domain.Account, error)
	GetByIDFn          func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	IncrementBalanceFn func(ctx context.Context, id uuid.UUID, amount int64) (int64, error)

	mu       sync.Mutex
	byEmail  map[string]*domain.Account
	byID     map[uuid.UUID]*domain.Account
	LastID   uuid.UUID
	ForceErr error
}

// Ensure MockAccountStore implements store.AccountStore
var _ store.AccountStore = (*MockAccountStore)(nil)

// NewMockAccountStore creates a new mock store with initialized defaults.
func NewMockAccountStore() *MockAccountStore {
	return &MockAccountStore{
		byEmail: make(map[string]*domain.Account),
		byID:    make(map[uuid.UUID]*domain.Account),
	}
}

// Seed inserts an account directly, bypassing uniqueness checks. Test setup only.
func (m *MockAccountStore) Seed(account *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byEmail[account.Email] = account
	m.byID[account.ID] = account
}

// Create implements the AccountStore interface.
func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}
	if m.ForceErr != nil {
		return m.ForceErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byEmail[account.Email]; exists {
		return store.ErrEmailExists
	}
	m.byEmail[account.Email] = account
	m.byID[account.ID] = account
	m.LastID = account.ID
	return nil
}

// GetByEmail implements the AccountStore interface.
func (m *MockAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	if m.ForceErr != nil {
		return nil, m.ForceErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	account, exists := m.byEmail[email]
	if !exists {
		return nil, store.ErrAccountNotFound
	}
	return account, nil
}

// GetByID implements the AccountStore interface.
func (m *MockAccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.ForceErr != nil {
		return nil, m.ForceErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	account, exists := m.byID[id]
	if !exists {
		return nil, store.ErrAccountNotFound
	}
	return account, nil
}

// IncrementBalance implements the AccountStore interface. The mutex makes the
// read-add-write a single critical section, mirroring the single-statement
// increment the real store performs.
func (m *MockAccountStore) IncrementBalance(
	ctx context.Context,
	id uuid.UUID,
	amount int64,
) (int64, error) {
	if m.IncrementBalanceFn != nil {
		return m.IncrementBalanceFn(ctx, id, amount)
	}
	if m.ForceErr != nil {
		return 0, m.ForceErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	account, exists := m.byID[id]
	if !exists {
		return 0, store.ErrAccountNotFound
	}
	account.Balance += amount
	return account.Balance, nil
}
