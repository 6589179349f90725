package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vajra-labs/vajra-auth/internal/api"
	apiMiddleware "github.com/vajra-labs/vajra-auth/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.Metrics)

	accountHandler := api.NewAccountHandler(app.accountService, app.logger)
	ledgerHandler := api.NewLedgerHandler(app.ledgerService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/register", accountHandler.Register)
		r.Post("/login", accountHandler.Login)

		// Protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(apiMiddleware.RequireBearerToken)
			r.Get("/user", ledgerHandler.GetUser)
			r.Post("/update-tokens", ledgerHandler.UpdateTokens)
		})
	})

	// Health checks
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"ok":true}`)); err != nil {
			app.logger.Error("Failed to write ping response", "error", err)
		}
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Prometheus exposition
	r.Handle("/metrics", promhttp.Handler())

	return r
}
