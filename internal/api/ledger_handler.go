package api

import (
	"log/slog"
	"net/http"

	"github.com/vajra-labs/vajra-auth/internal/api/shared"
	"github.com/vajra-labs/vajra-auth/internal/service/ledger"
)

// LedgerHandler handles authenticated balance reads and adjustments.
type LedgerHandler struct {
	ledger *ledger.Service
	logger *slog.Logger
}

// NewLedgerHandler creates a new LedgerHandler with the given dependencies.
func NewLedgerHandler(ledger *ledger.Service, logger *slog.Logger) *LedgerHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerHandler{
		ledger: ledger,
		logger: logger.With(slog.String("component", "ledger_handler")),
	}
}

// GetUser handles the GET /api/user endpoint, returning the token holder's
// public profile.
func (h *LedgerHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	token, ok := shared.BearerToken(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	profile, err := h.ledger.GetProfile(r.Context(), token)
	if err != nil {
		shared.RespondWithErrorAndLog(
			w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newProfileResponse(profile))
}

// UpdateTokens handles the POST /api/update-tokens endpoint, atomically
// incrementing the token holder's balance.
func (h *LedgerHandler) UpdateTokens(w http.ResponseWriter, r *http.Request) {
	token, ok := shared.BearerToken(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	var req UpdateTokensRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid token amount")
		return
	}

	newBalance, err := h.ledger.AdjustBalance(r.Context(), token, req.Amount)
	if err != nil {
		shared.RespondWithErrorAndLog(
			w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateTokensResponse{
		Tokens:  newBalance,
		Message: "Tokens updated successfully",
	})
}
