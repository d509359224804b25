package store

import (
	"context"

	"github.com/phrazzld/bank-api/internal/domain"
)

// AccountStore defines the interface for account data persistence.
// It owns the accounts table, which references clients.
type AccountStore interface {
	// BootstrapSchema (re)creates the accounts table with a foreign key to clients.
	// When seed is true the demo accounts are inserted.
	// Returns ErrUnavailable if the clients table does not exist yet.
	BootstrapSchema(ctx context.Context, seed bool) error

	// CreateForClient verifies that the client exists, then inserts an account
	// and returns it with its generated id.
	// Returns ErrClientNotFound if the client does not exist.
	CreateForClient(ctx context.Context, clientID, amount int) (*domain.Account, error)

	// ListByClient returns all accounts owned by the client. An empty result is
	// a valid outcome; the caller decides whether it means "not found".
	ListByClient(ctx context.Context, clientID int) ([]*domain.Account, error)

	// GetByClientAndAccount looks an account up by accountID and verifies ownership.
	// Returns ErrAccountNotFound if no row matches and ErrAccountClientMismatch
	// if the account belongs to another client.
	GetByClientAndAccount(ctx context.Context, clientID, accountID int) (*domain.Account, error)

	// ListBetweenAmounts returns the client's accounts whose amount lies in
	// [low, high], bounds inclusive.
	// Returns ErrClientNotFound if the client owns no accounts at all.
	ListBetweenAmounts(ctx context.Context, clientID, low, high int) ([]*domain.Account, error)

	// UpdateAmount replaces the amount of an account after checking that the
	// client exists and owns it.
	// Returns ErrClientNotFound, ErrAccountNotFound or ErrAccountClientMismatch
	// from the checks, and ErrUnavailable if the update itself touched no rows.
	UpdateAmount(ctx context.Context, clientID, accountID, newAmount int) (*domain.Account, error)

	// Delete removes an account after the same checks as UpdateAmount and
	// returns the last known values of the deleted record.
	Delete(ctx context.Context, clientID, accountID int) (*domain.Account, error)
}
