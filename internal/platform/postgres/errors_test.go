package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/bank-api/internal/platform/postgres"
	"github.com/phrazzld/bank-api/internal/store"
	"github.com/stretchr/testify/assert"
)

// Mock PgError creation helper
func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           code,
		Message:        "error message",
		Detail:         "Key (client_id)=(1) already exists.",
		Hint:           "error hint",
		SchemaName:     "public",
		TableName:      "clients",
		ColumnName:     "client_id",
		ConstraintName: "clients_pkey",
		File:           "nbtinsert.c",
		Line:           100,
		Routine:        "_bt_check_unique",
	}
}

// MockResult implements sql.Result for testing
type MockResult struct {
	rowsAffected int64
	err          error
}

func (m MockResult) LastInsertId() (int64, error) {
	return 0, m.err
}

func (m MockResult) RowsAffected() (int64, error) {
	return m.rowsAffected, m.err
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"unique violation", newPgError("23505"), store.ErrDuplicate},
		{"foreign key violation", newPgError("23503"), store.ErrClientNotFound},
		{"syntax error", newPgError("42601"), store.ErrUnavailable},
		{"check violation is not classified", newPgError("23514"), store.ErrUnavailable},
		{"no rows", sql.ErrNoRows, store.ErrNotFound},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), store.ErrUnavailable},
		{"already classified", fmt.Errorf("%w: id 7", store.ErrAccountNotFound), store.ErrAccountNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := postgres.MapError(tt.err)

			assert.ErrorIs(t, result, tt.expected)
			assert.True(t, store.IsStoreError(result), "mapped error must carry a store sentinel")

			var pgErr *pgconn.PgError
			assert.False(t, errors.As(result, &pgErr),
				"PostgreSQL error details should not be accessible in mapped error")
		})
	}

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, postgres.MapError(nil))
	})

	t.Run("already classified passes through unchanged", func(t *testing.T) {
		t.Parallel()
		original := fmt.Errorf("%w: account 3", store.ErrAccountClientMismatch)
		assert.Same(t, original, postgres.MapError(original))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsUniqueViolation(newPgError("23505")))
	assert.True(t, postgres.IsUniqueViolation(fmt.Errorf("insert: %w", newPgError("23505"))))
	assert.False(t, postgres.IsUniqueViolation(newPgError("23503")))
	assert.False(t, postgres.IsUniqueViolation(errors.New("generic error")))
	assert.False(t, postgres.IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsForeignKeyViolation(newPgError("23503")))
	assert.False(t, postgres.IsForeignKeyViolation(newPgError("23505")))
	assert.False(t, postgres.IsForeignKeyViolation(nil))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   sql.Result
		zeroErr  error
		expected error
	}{
		{"one row", MockResult{rowsAffected: 1}, store.ErrClientNotFound, nil},
		{"zero rows with specific error", MockResult{rowsAffected: 0}, store.ErrClientNotFound, store.ErrClientNotFound},
		{"zero rows without specific error", MockResult{rowsAffected: 0}, nil, store.ErrNotFound},
		{"rows affected fails", MockResult{err: errors.New("driver does not support")}, nil, store.ErrUnavailable},
		{"nil result", nil, nil, store.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := postgres.CheckRowsAffected(tt.result, tt.zeroErr)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestMapUniqueViolation(t *testing.T) {
	t.Parallel()

	err := postgres.MapUniqueViolation(newPgError("23505"), store.ErrClientExists)
	assert.ErrorIs(t, err, store.ErrClientExists)
	assert.ErrorIs(t, err, store.ErrDuplicate)
	assert.Contains(t, err.Error(), "clients_pkey")

	var pgErr *pgconn.PgError
	assert.False(t, errors.As(err, &pgErr))

	generic := postgres.MapUniqueViolation(newPgError("23505"), nil)
	assert.ErrorIs(t, generic, store.ErrDuplicate)

	other := errors.New("not a violation")
	assert.Same(t, other, postgres.MapUniqueViolation(other, store.ErrClientExists))
}
