package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vajra-labs/vajra-auth/internal/api"
	"github.com/vajra-labs/vajra-auth/internal/domain"
	"github.com/vajra-labs/vajra-auth/internal/service/account"
	"github.com/vajra-labs/vajra-auth/internal/service/auth"
	"github.com/vajra-labs/vajra-auth/internal/service/ledger"
	"github.com/vajra-labs/vajra-auth/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", account.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"account not found", store.ErrAccountNotFound, http.StatusNotFound},
		{"duplicate email maps to 400, not 409", store.ErrEmailExists, http.StatusBadRequest},
		{"invalid amount", ledger.ErrInvalidAmount, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"validation error", domain.ErrEmptyEmail, http.StatusBadRequest},
		{"store unavailable", store.ErrUnavailable, http.StatusServiceUnavailable},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{
			"wrapped errors unwrap",
			fmt.Errorf("login: %w", account.ErrInvalidCredentials),
			http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, api.MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, "Server error"},
		{"invalid credentials", account.ErrInvalidCredentials, "Invalid credentials"},
		{"expired token", auth.ErrExpiredToken, "Token is not valid"},
		{"account not found", store.ErrAccountNotFound, "User not found"},
		{"duplicate email", store.ErrEmailExists, "User already exists"},
		{"invalid amount", ledger.ErrInvalidAmount, "Invalid token amount"},
		{"validation error", domain.ErrEmptyName, "Invalid request data"},
		{"store unavailable", store.ErrUnavailable, "Database not connected"},
		{"unknown error", errors.New("pq: syntax error at line 3"), "Server error"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, api.GetSafeErrorMessage(tt.err))
		})
	}

	t.Run("never echoes internal detail", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("dial tcp 10.0.0.5:5432: %w", store.ErrUnavailable)
		msg := api.GetSafeErrorMessage(err)
		assert.NotContains(t, msg, "10.0.0.5")
	})
}
