// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyAccountID      = errors.New("account ID cannot be empty")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrEmptyCompany        = errors.New("company cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
	ErrEmptyExternalID     = errors.New("external ID cannot be empty")
	ErrNegativeBalance     = errors.New("balance cannot be negative")
)

// Account represents a registered identity with credentials and a credit balance.
type Account struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Company string    `json:"company"`
	Email   string    `json:"email"`

	// Password holds the plaintext password only between registration input
	// and hashing. It is never persisted or serialized.
	Password       string `json:"-"`
	HashedPassword string `json:"-"` // Never expose the password hash in JSON

	// ExternalID is a caller-supplied opaque identifier. It is stored verbatim
	// and no uniqueness is enforced on it.
	ExternalID string `json:"external_id"`

	// Balance is the account's credit counter. It starts at zero and is only
	// mutated through the ledger's atomic increment.
	Balance int64 `json:"balance"`

	CreatedAt time.Time `json:"created_at"`
}

// Profile is the public view of an account returned to authenticated callers.
// It never carries the password hash or the account's internal identifiers.
type Profile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Balance int64  `json:"balance"`
}

// Profile returns the public view of the account.
func (a *Account) Profile() Profile {
	return Profile{
		Name:    a.Name,
		Email:   a.Email,
		Balance: a.Balance,
	}
}

// NewAccount creates a new Account with a generated ID, a zero balance, and the
// creation timestamp set to now. The plaintext password is carried on the struct
// for the caller to hash before the account is stored.
// Returns an error if validation fails.
func NewAccount(name, company, email, password, externalID string) (*Account, error) {
	account := &Account{
		ID:         uuid.New(),
		Name:       name,
		Company:    company,
		Email:      email,
		Password:   password,
		ExternalID: externalID,
		Balance:    0,
		CreatedAt:  time.Now().UTC(),
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
// Returns an error if any field fails validation.
func (a *Account) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAccountID
	}

	if a.Name == "" {
		return ErrEmptyName
	}

	if a.Company == "" {
		return ErrEmptyCompany
	}

	// The email is an opaque lookup key: it only has to be present. Accounts
	// registered with unconventional addresses are accepted and stored verbatim.
	if a.Email == "" {
		return ErrEmptyEmail
	}

	if a.ExternalID == "" {
		return ErrEmptyExternalID
	}

	// A freshly registered account carries a plaintext password; an account
	// loaded from the store carries only the hash.
	if a.Password == "" && a.HashedPassword == "" {
		return ErrEmptyPassword
	}

	if a.Balance < 0 {
		return ErrNegativeBalance
	}

	return nil
}
