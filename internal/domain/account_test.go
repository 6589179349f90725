package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Parallel()

	t.Run("unconventional email is accepted and stored verbatim", func(t *testing.T) {
		t.Parallel()
		for _, email := range []string{"not-an-email", "@x.com", "a@", "a@x@com"} {
			account, err := NewAccount("Alice", "Acme", email, "pw123", "u1")
			require.NoError(t, err, "email %q", email)
			assert.Equal(t, email, account.Email)
		}
	})

	t.Run("valid account", func(t *testing.T) {
		t.Parallel()
		account, err := NewAccount("Alice", "Acme", "a@x.com", "pw123", "u1")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, account.ID)
		assert.Equal(t, "Alice", account.Name)
		assert.Equal(t, "Acme", account.Company)
		assert.Equal(t, "a@x.com", account.Email)
		assert.Equal(t, "pw123", account.Password)
		assert.Equal(t, "u1", account.ExternalID)
		assert.Equal(t, int64(0), account.Balance)
		assert.False(t, account.CreatedAt.IsZero())
	})

	tests := []struct {
		name    string
		fields  [5]string // name, company, email, password, externalID
		wantErr error
	}{
		{"empty name", [5]string{"", "Acme", "a@x.com", "pw123", "u1"}, ErrEmptyName},
		{"empty company", [5]string{"Alice", "", "a@x.com", "pw123", "u1"}, ErrEmptyCompany},
		{"empty email", [5]string{"Alice", "Acme", "", "pw123", "u1"}, ErrEmptyEmail},
		{"empty password", [5]string{"Alice", "Acme", "a@x.com", "", "u1"}, ErrEmptyPassword},
		{"empty external ID", [5]string{"Alice", "Acme", "a@x.com", "pw123", ""}, ErrEmptyExternalID},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := tt.fields
			account, err := NewAccount(f[0], f[1], f[2], f[3], f[4])
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, account)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestAccountValidate(t *testing.T) {
	t.Parallel()

	t.Run("stored account without plaintext password", func(t *testing.T) {
		t.Parallel()
		account := &Account{
			ID:             uuid.New(),
			Name:           "Alice",
			Company:        "Acme",
			Email:          "a@x.com",
			HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
			ExternalID:     "u1",
		}
		assert.NoError(t, account.Validate())
	})

	t.Run("nil ID", func(t *testing.T) {
		t.Parallel()
		account := &Account{
			Name:           "Alice",
			Company:        "Acme",
			Email:          "a@x.com",
			HashedPassword: "hash",
			ExternalID:     "u1",
		}
		assert.ErrorIs(t, account.Validate(), ErrEmptyAccountID)
	})

	t.Run("negative balance", func(t *testing.T) {
		t.Parallel()
		account := &Account{
			ID:             uuid.New(),
			Name:           "Alice",
			Company:        "Acme",
			Email:          "a@x.com",
			HashedPassword: "hash",
			ExternalID:     "u1",
			Balance:        -1,
		}
		assert.ErrorIs(t, account.Validate(), ErrNegativeBalance)
	})
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidationError(ErrEmptyEmail))
	assert.True(t, IsValidationError(ErrValidation))
	assert.False(t, IsValidationError(assert.AnError))
	assert.False(t, IsValidationError(nil))
}
