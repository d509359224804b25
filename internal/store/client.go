package store

import (
	"context"

	"github.com/phrazzld/bank-api/internal/domain"
)

// ClientStore defines the interface for client data persistence.
// It owns the clients table.
type ClientStore interface {
	// BootstrapSchema (re)creates the clients table, discarding prior contents.
	// The dependent accounts table is dropped first. When seed is true the
	// demo clients are inserted. Intended to run once at process start.
	BootstrapSchema(ctx context.Context, seed bool) error

	// GetByID retrieves a client by its primary key.
	// Returns ErrClientNotFound if no row matches.
	GetByID(ctx context.Context, id int) (*domain.Client, error)

	// GetAll returns every client. Ordering is not part of the contract.
	GetAll(ctx context.Context) ([]*domain.Client, error)

	// Insert stores a new client and returns it with the id generated by the store.
	// Returns ErrClientAddFailed if no row was inserted.
	Insert(ctx context.Context, firstName, lastName string) (*domain.Client, error)

	// InsertWithID stores a client under a caller-supplied id.
	// Returns ErrClientExists if the id is already taken.
	InsertWithID(ctx context.Context, id int, firstName, lastName string) (*domain.Client, error)

	// Update replaces both name fields atomically.
	// Returns ErrClientNotFound if the id does not exist.
	Update(ctx context.Context, id int, firstName, lastName string) (*domain.Client, error)
}
