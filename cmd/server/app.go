package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/vajra-labs/vajra-auth/internal/config"
	"github.com/vajra-labs/vajra-auth/internal/platform/postgres"
	"github.com/vajra-labs/vajra-auth/internal/service/account"
	"github.com/vajra-labs/vajra-auth/internal/service/auth"
	"github.com/vajra-labs/vajra-auth/internal/service/ledger"
	"github.com/vajra-labs/vajra-auth/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown. There are no ambient
// globals: the database pool and the signing secret live here and are
// injected into the services that need them.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	accountStore   store.AccountStore
	sessionService auth.SessionService
	accountService *account.Service
	ledgerService  *ledger.Service
}

// newApplication connects the database, applies migrations, and constructs
// every service with its dependencies injected.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runMigrations(db, logger); err != nil {
		closeQuietly(db, logger)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	sessionService, err := auth.NewSessionService(cfg.Auth)
	if err != nil {
		closeQuietly(db, logger)
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	accountStore := postgres.NewPostgresAccountStore(db, logger)
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	accountService := account.NewService(accountStore, hasher, sessionService, logger)
	ledgerService := ledger.NewService(accountStore, sessionService, logger)

	return &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		accountStore:   accountStore,
		sessionService: sessionService,
		accountService: accountService,
		ledgerService:  ledgerService,
	}, nil
}

// cleanup releases resources held by the application, most importantly the
// database connection pool.
func (app *application) cleanup() {
	closeQuietly(app.db, app.logger)
}

func closeQuietly(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("failed to close database connection", "error", err)
	}
}
