package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/bank-api/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"
)

// MapError maps a database error to the store error taxonomy.
// Errors that already carry a store sentinel are returned unchanged.
// The only foreign key in the schema is accounts.client_id, so a foreign key
// violation means the referenced client is missing. Anything without a more
// specific mapping becomes store.ErrUnavailable.
//
// The driver error itself is never wrapped with %w, so callers cannot reach
// pgconn details through errors.As.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if store.IsStoreError(err) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: no rows in result set", store.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: unique violation (%s)", store.ErrDuplicate, pgErr.ConstraintName)
		case foreignKeyViolationCode:
			return fmt.Errorf(
				"%w: foreign key violation (%s)",
				store.ErrClientNotFound,
				pgErr.ConstraintName,
			)
		}
		return fmt.Errorf("%w: %s (SQLSTATE %s)", store.ErrUnavailable, pgErr.Message, pgErr.Code)
	}

	return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
// This is useful for detecting duplicate records that violate unique constraints.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation checks if the given error is a PostgreSQL foreign key constraint violation.
// This occurs when an operation would violate referential integrity constraints.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// CheckRowsAffected examines the number of rows affected by a database operation.
// If no rows were affected, it returns zeroErr, or store.ErrNotFound when zeroErr is nil.
func CheckRowsAffected(result sql.Result, zeroErr error) error {
	if result == nil {
		return fmt.Errorf("%w: nil result provided to CheckRowsAffected", store.ErrUnavailable)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to get rows affected: %v", store.ErrUnavailable, err)
	}

	if rowsAffected == 0 {
		if zeroErr == nil {
			return store.ErrNotFound
		}
		return zeroErr
	}

	return nil
}

// MapUniqueViolation maps a PostgreSQL unique violation error to a more specific error.
// If the error is not a unique violation, it returns the original error.
func MapUniqueViolation(err error, specificError error) error {
	if !IsUniqueViolation(err) {
		return err
	}

	var pgErr *pgconn.PgError
	_ = errors.As(err, &pgErr)

	if specificError == nil {
		specificError = store.ErrDuplicate
	}
	return fmt.Errorf("%w: unique violation (%s)", specificError, pgErr.ConstraintName)
}
