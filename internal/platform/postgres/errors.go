package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vajra-labs/vajra-auth/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"

	// connectionExceptionClass is the PostgreSQL error class for connection failures
	connectionExceptionClass = "08"
)

// accountsEmailConstraint is the unique index backing email uniqueness.
const accountsEmailConstraint = "accounts_email_key"

// MapError maps a database error to the store's error taxonomy, wrapping the
// original error to preserve context. Every database operation in this
// package routes its errors through here so callers only ever match the
// store sentinels.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrAccountNotFound, err)
	}

	if isUnavailable(err) {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == accountsEmailConstraint:
			return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		case pgErr.Code == uniqueViolationCode:
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case pgErr.Code == checkViolationCode:
			return fmt.Errorf(
				"%w: check constraint violation (%s): %v",
				store.ErrInvalidEntity, pgErr.ConstraintName, err)
		case pgErr.Code == notNullViolationCode:
			return fmt.Errorf(
				"%w: not null violation (%s): %v",
				store.ErrInvalidEntity, pgErr.ColumnName, err)
		case strings.HasPrefix(pgErr.Code, connectionExceptionClass):
			return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
		}
	}

	// Errors without a specific mapping pass through unchanged.
	return err
}

// isUnavailable reports whether the error indicates the database itself is
// unreachable rather than a statement-level failure.
func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
