package api

import (
	"log/slog"
	"net/http"

	"github.com/vajra-labs/vajra-auth/internal/api/shared"
	"github.com/vajra-labs/vajra-auth/internal/service/account"
)

// AccountHandler handles registration and login requests.
type AccountHandler struct {
	accounts *account.Service
	logger   *slog.Logger
}

// NewAccountHandler creates a new AccountHandler with the given dependencies.
func NewAccountHandler(accounts *account.Service, logger *slog.Logger) *AccountHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountHandler{
		accounts: accounts,
		logger:   logger.With(slog.String("component", "account_handler")),
	}
}

// Register handles the POST /api/register endpoint.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Name, company, email, password and uniqueId are required")
		return
	}

	id, err := h.accounts.Register(
		r.Context(), req.Name, req.Company, req.Email, req.Password, req.UniqueID)
	if err != nil {
		shared.RespondWithErrorAndLog(
			w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		ID:      id,
		Message: "User registered successfully",
	})
}

// Login handles the POST /api/login endpoint.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Email and password are required")
		return
	}

	result, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(
			w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token: result.Token,
		User:  newProfileResponse(result.Profile),
	})
}
