package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bank-api/internal/redact"
	"github.com/phrazzld/bank-api/internal/store"
)

// withConn acquires one dedicated connection, runs fn on it, and releases the
// connection on every exit path, including panics.
// A failure to acquire the connection is reported as store.ErrUnavailable.
func withConn(
	ctx context.Context,
	conns store.ConnProvider,
	log *slog.Logger,
	fn func(conn *sql.Conn) error,
) error {
	conn, err := conns.Conn(ctx)
	if err != nil {
		log.Error("failed to acquire database connection",
			slog.String("error", redact.Error(err)))
		return fmt.Errorf("%w: acquire connection: %v", store.ErrUnavailable, err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			log.Warn("failed to release database connection",
				slog.String("error", redact.Error(closeErr)))
		}
	}()

	return fn(conn)
}

// unavailable wraps a bootstrap failure so that it always reports
// store.ErrUnavailable, whatever the underlying cause.
func unavailable(step string, err error) error {
	mapped := MapError(err)
	if errors.Is(mapped, store.ErrUnavailable) {
		return fmt.Errorf("%s: %w", step, mapped)
	}
	return fmt.Errorf("%w: %s: %v", store.ErrUnavailable, step, mapped)
}
