// Package service provides application-level services for managing clients and accounts.
package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/bank-api/internal/store"
)

// Validation sentinels raised before any store access.
// Repository outcomes keep their store sentinels (store.ErrClientNotFound and
// friends) so the kind survives re-wrapping.
//
// Error handling principles:
// 1. Service methods return *ServiceError for every failure
// 2. ServiceError.Message is the stable, caller-facing text
// 3. ServiceError.Err carries the kind and is checked with errors.Is
// 4. The API layer maps kinds to HTTP status codes
var (
	// ErrEmptyParameter indicates that a required text input was blank after trimming.
	// API layer should map this to HTTP 400 Bad Request.
	ErrEmptyParameter = errors.New("empty parameter")

	// ErrBadParameter indicates that a numeric input did not parse, or that a
	// business rule over the inputs was violated.
	// API layer should map this to HTTP 400 Bad Request.
	ErrBadParameter = errors.New("bad parameter")
)

// Kind names an error category of the service boundary.
type Kind string

// Error kinds reported by KindOf.
const (
	KindEmptyParameter        Kind = "EmptyParameter"
	KindBadParameter          Kind = "BadParameter"
	KindClientNotFound        Kind = "ClientNotFound"
	KindClientAlreadyExists   Kind = "ClientAlreadyExists"
	KindAccountNotFound       Kind = "AccountNotFound"
	KindAccountClientMismatch Kind = "AccountClientMismatch"
	KindAddFailed             Kind = "AddFailed"
	KindDatabaseUnavailable   Kind = "DatabaseUnavailable"
)

// KindOf classifies err. Any failure that carries no known sentinel is
// reported as KindDatabaseUnavailable. KindOf(nil) returns "".
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyParameter):
		return KindEmptyParameter
	case errors.Is(err, ErrBadParameter):
		return KindBadParameter
	case errors.Is(err, store.ErrClientNotFound):
		return KindClientNotFound
	case errors.Is(err, store.ErrAccountNotFound):
		return KindAccountNotFound
	case errors.Is(err, store.ErrDuplicate):
		return KindClientAlreadyExists
	case errors.Is(err, store.ErrAccountClientMismatch):
		return KindAccountClientMismatch
	case errors.Is(err, store.ErrAddFailed):
		return KindAddFailed
	default:
		return KindDatabaseUnavailable
	}
}

// ServiceError is the error type returned by every service operation.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// MessageOf returns the caller-facing message of err. Errors that did not come
// from a service get a generic text so that internal details stay hidden.
func MessageOf(err error) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}
	return "An unexpected error occurred"
}

// unavailableMessage is shown for every store fault.
const unavailableMessage = "Could not connect to the database"

// ensureKind makes sure a store error that escaped classification is still
// reported as DatabaseUnavailable.
func ensureKind(err error) error {
	if store.IsStoreError(err) {
		return err
	}
	return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
}
