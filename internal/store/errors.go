package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrClientNotFound, ErrAccountNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a client with an id that is already taken).
	ErrDuplicate = errors.New("entity already exists")

	// ErrAddFailed is returned when an insert reported no affected rows and
	// no more specific cause is known.
	ErrAddFailed = errors.New("entity could not be added")

	// ErrAccountClientMismatch is returned when an account exists but is owned
	// by a different client than the one named in the request.
	ErrAccountClientMismatch = errors.New("account does not belong to client")

	// ErrUnavailable is returned for any lower-level store fault: connectivity,
	// syntax, or a constraint violation that has no more specific mapping.
	// Raw driver errors never leave the store without being wrapped in it.
	ErrUnavailable = errors.New("database unavailable")

	// ErrTransactionFailed is returned when a database transaction fails
	// to begin or commit.
	ErrTransactionFailed = fmt.Errorf("%w: transaction failed", ErrUnavailable)

	// Entity-specific "not found" errors

	// ErrClientNotFound indicates that the referenced client does not exist.
	ErrClientNotFound = fmt.Errorf("%w: client", ErrNotFound)

	// ErrAccountNotFound indicates that the referenced account does not exist.
	ErrAccountNotFound = fmt.Errorf("%w: account", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrClientExists indicates that a client with the given id already exists.
	// This is returned when inserting a client with an explicit id that is taken.
	ErrClientExists = fmt.Errorf("%w: client", ErrDuplicate)

	// Entity-specific "add failed" errors

	// ErrClientAddFailed indicates that a client insert affected no rows.
	ErrClientAddFailed = fmt.Errorf("%w: client", ErrAddFailed)

	// ErrAccountAddFailed indicates that an account insert affected no rows.
	ErrAccountAddFailed = fmt.Errorf("%w: account", ErrAddFailed)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// This includes the generic ErrNotFound and all entity-specific not found errors.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsStoreError reports whether err already carries one of the store sentinels,
// in which case it must not be reclassified.
func IsStoreError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrAddFailed) ||
		errors.Is(err, ErrAccountClientMismatch) ||
		errors.Is(err, ErrUnavailable)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "client", "account")
	Operation string // The operation that failed (e.g., "insert", "update_amount")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
