package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vajra-labs/vajra-auth/internal/api"
	"github.com/vajra-labs/vajra-auth/internal/domain"
	"github.com/vajra-labs/vajra-auth/internal/mocks"
	"github.com/vajra-labs/vajra-auth/internal/service/account"
	"github.com/vajra-labs/vajra-auth/internal/store"
)

func newAccountHandler(accounts *mocks.MockAccountStore) *api.AccountHandler {
	svc := account.NewService(
		accounts,
		&mocks.MockPasswordHasher{ShouldSucceed: true},
		&mocks.MockSessionService{Token: "test-token"},
		nil,
	)
	return api.NewAccountHandler(svc, nil)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterHandler(t *testing.T) {
	t.Parallel()

	validPayload := map[string]any{
		"name":     "Alice",
		"company":  "Acme",
		"email":    "a@x.com",
		"password": "pw123",
		"uniqueId": "u1",
	}

	t.Run("valid registration returns 201 with account ID", func(t *testing.T) {
		t.Parallel()
		accounts := mocks.NewMockAccountStore()
		handler := newAccountHandler(accounts)

		rec := postJSON(t, handler.Register, "/api/register", validPayload)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp api.RegisterResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, accounts.LastID, resp.ID)
		assert.Equal(t, "User registered successfully", resp.Message)

		// The response never echoes the password or its hash.
		assert.NotContains(t, rec.Body.String(), "pw123")
		assert.NotContains(t, rec.Body.String(), "hashed:")
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		t.Parallel()
		handler := newAccountHandler(mocks.NewMockAccountStore())

		for _, missing := range []string{"name", "company", "email", "password", "uniqueId"} {
			payload := map[string]any{}
			for k, v := range validPayload {
				payload[k] = v
			}
			delete(payload, missing)

			rec := postJSON(t, handler.Register, "/api/register", payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "missing %s", missing)
		}
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		t.Parallel()
		handler := newAccountHandler(mocks.NewMockAccountStore())

		req := httptest.NewRequest(
			http.MethodPost, "/api/register", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		handler.Register(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate email returns 400", func(t *testing.T) {
		t.Parallel()
		accounts := mocks.NewMockAccountStore()
		handler := newAccountHandler(accounts)

		rec := postJSON(t, handler.Register, "/api/register", validPayload)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = postJSON(t, handler.Register, "/api/register", validPayload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "User already exists")
	})

	t.Run("store unavailable returns 503", func(t *testing.T) {
		t.Parallel()
		accounts := mocks.NewMockAccountStore()
		accounts.ForceErr = store.ErrUnavailable
		handler := newAccountHandler(accounts)

		rec := postJSON(t, handler.Register, "/api/register", validPayload)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	seedAlice := func(t *testing.T, accounts *mocks.MockAccountStore) {
		t.Helper()
		alice, err := domain.NewAccount("Alice", "Acme", "a@x.com", "pw123", "u1")
		require.NoError(t, err)
		alice.HashedPassword = "hashed:pw123"
		alice.Password = ""
		accounts.Seed(alice)
	}

	t.Run("valid login returns token and profile", func(t *testing.T) {
		t.Parallel()
		accounts := mocks.NewMockAccountStore()
		seedAlice(t, accounts)
		handler := newAccountHandler(accounts)

		rec := postJSON(t, handler.Login, "/api/login", map[string]any{
			"email":    "a@x.com",
			"password": "pw123",
		})
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp api.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "test-token", resp.Token)
		assert.Equal(t, "Alice", resp.User.Name)
		assert.Equal(t, "a@x.com", resp.User.Email)
		assert.Equal(t, int64(0), resp.User.Tokens)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()
		accounts := mocks.NewMockAccountStore()
		seedAlice(t, accounts)
		svc := account.NewService(
			accounts,
			&mocks.MockPasswordHasher{ShouldSucceed: false},
			&mocks.MockSessionService{Token: "t"},
			nil,
		)
		handler := api.NewAccountHandler(svc, nil)

		unknown := postJSON(t, handler.Login, "/api/login", map[string]any{
			"email": "nobody@x.com", "password": "pw123",
		})
		mismatch := postJSON(t, handler.Login, "/api/login", map[string]any{
			"email": "a@x.com", "password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.Equal(t, http.StatusUnauthorized, mismatch.Code)

		var unknownResp, mismatchResp map[string]any
		require.NoError(t, json.Unmarshal(unknown.Body.Bytes(), &unknownResp))
		require.NoError(t, json.Unmarshal(mismatch.Body.Bytes(), &mismatchResp))
		assert.Equal(t, unknownResp["message"], mismatchResp["message"])
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		t.Parallel()
		handler := newAccountHandler(mocks.NewMockAccountStore())

		rec := postJSON(t, handler.Login, "/api/login", map[string]any{"email": "a@x.com"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = postJSON(t, handler.Login, "/api/login", map[string]any{"password": "pw123"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
