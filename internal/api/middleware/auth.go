package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vajra-labs/vajra-auth/internal/api/shared"
)

// RequireBearerToken extracts the bearer token from the Authorization header
// and places the raw token in the request context. A missing or malformed
// header is rejected with 401. Validating the token itself is left to the
// services, which resolve the caller's identity per protected call.
func RequireBearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		ctx := context.WithValue(r.Context(), shared.BearerTokenContextKey, parts[1])
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
