package postgres

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/vajra-labs/vajra-auth/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "nil passes through",
			err:     nil,
			wantErr: nil,
		},
		{
			name:    "no rows maps to account not found",
			err:     sql.ErrNoRows,
			wantErr: store.ErrAccountNotFound,
		},
		{
			name:    "email unique violation maps to email exists",
			err:     &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: accountsEmailConstraint},
			wantErr: store.ErrEmailExists,
		},
		{
			name:    "other unique violation maps to duplicate",
			err:     &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "accounts_pkey"},
			wantErr: store.ErrDuplicate,
		},
		{
			name:    "check violation maps to invalid entity",
			err:     &pgconn.PgError{Code: checkViolationCode, ConstraintName: "accounts_balance_check"},
			wantErr: store.ErrInvalidEntity,
		},
		{
			name:    "not null violation maps to invalid entity",
			err:     &pgconn.PgError{Code: notNullViolationCode, ColumnName: "email"},
			wantErr: store.ErrInvalidEntity,
		},
		{
			name:    "connection exception maps to unavailable",
			err:     &pgconn.PgError{Code: "08006"},
			wantErr: store.ErrUnavailable,
		},
		{
			name:    "bad connection maps to unavailable",
			err:     driver.ErrBadConn,
			wantErr: store.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mapped := MapError(tt.err)
			if tt.wantErr == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tt.wantErr)
		})
	}

	t.Run("unmapped errors pass through unchanged", func(t *testing.T) {
		t.Parallel()
		original := fmt.Errorf("some driver quirk")
		assert.Equal(t, original, MapError(original))
	})

	t.Run("wrapped errors still map", func(t *testing.T) {
		t.Parallel()
		wrapped := fmt.Errorf("exec: %w", &pgconn.PgError{
			Code:           uniqueViolationCode,
			ConstraintName: accountsEmailConstraint,
		})
		assert.ErrorIs(t, MapError(wrapped), store.ErrEmailExists)
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: checkViolationCode}))
	assert.False(t, IsUniqueViolation(sql.ErrNoRows))
	assert.False(t, IsUniqueViolation(nil))
}
