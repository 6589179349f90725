// Package postgres implements the store interfaces on PostgreSQL.
package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vajra-labs/vajra-auth/internal/domain"
	"github.com/vajra-labs/vajra-auth/internal/platform/logger"
	"github.com/vajra-labs/vajra-auth/internal/store"
)

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the
// AccountStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAccountStore(db store.DBTX, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

// Create implements store.AccountStore.Create.
// The accounts_email_key unique index is the backstop for the registration
// check-then-insert race: a concurrent duplicate insert fails here with
// store.ErrEmailExists instead of succeeding silently.
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if account.Password != "" {
		return store.ErrInvalidEntity
	}
	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	query := `
		INSERT INTO accounts (id, name, company, email, hashed_password, external_id, balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		account.ID,
		account.Name,
		account.Company,
		account.Email,
		account.HashedPassword,
		account.ExternalID,
		account.Balance,
		account.CreatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if IsUniqueViolation(err) {
			log.Warn("duplicate email during account creation",
				slog.String("account_id", account.ID.String()))
		} else {
			log.Error("failed to create account",
				slog.String("error", err.Error()),
				slog.String("account_id", account.ID.String()))
		}
		return mapped
	}

	log.Info("account created", slog.String("account_id", account.ID.String()))
	return nil
}

// GetByID implements store.AccountStore.GetByID.
func (s *PostgresAccountStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Account, error) {
	query := `
		SELECT id, name, company, email, hashed_password, external_id, balance, created_at
		FROM accounts
		WHERE id = $1
	`
	return s.scanAccount(s.db.QueryRowContext(ctx, query, id))
}

// GetByEmail implements store.AccountStore.GetByEmail. The comparison is
// case-sensitive, matching how emails are stored.
func (s *PostgresAccountStore) GetByEmail(
	ctx context.Context,
	email string,
) (*domain.Account, error) {
	query := `
		SELECT id, name, company, email, hashed_password, external_id, balance, created_at
		FROM accounts
		WHERE email = $1
	`
	return s.scanAccount(s.db.QueryRowContext(ctx, query, email))
}

// IncrementBalance implements store.AccountStore.IncrementBalance. The
// increment happens in a single UPDATE so concurrent adjustments to the same
// account serialize inside the database; there is no read-modify-write
// window in which an increment could be lost.
func (s *PostgresAccountStore) IncrementBalance(
	ctx context.Context,
	id uuid.UUID,
	amount int64,
) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE accounts
		SET balance = balance + $1
		WHERE id = $2
		RETURNING balance
	`
	var newBalance int64
	if err := s.db.QueryRowContext(ctx, query, amount, id).Scan(&newBalance); err != nil {
		return 0, MapError(err)
	}

	log.Debug("balance incremented",
		slog.String("account_id", id.String()),
		slog.Int64("amount", amount),
		slog.Int64("new_balance", newBalance))

	return newBalance, nil
}

// rowScanner abstracts *sql.Row for scanning a single account.
type rowScanner interface {
	Scan(dest ...any) error
}

func (s *PostgresAccountStore) scanAccount(row rowScanner) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Company,
		&account.Email,
		&account.HashedPassword,
		&account.ExternalID,
		&account.Balance,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, MapError(err)
	}
	return &account, nil
}
