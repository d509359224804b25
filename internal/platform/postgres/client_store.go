package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bank-api/internal/domain"
	"github.com/phrazzld/bank-api/internal/platform/logger"
	"github.com/phrazzld/bank-api/internal/redact"
	"github.com/phrazzld/bank-api/internal/store"
)

// PostgresClientStore implements the store.ClientStore interface
// using a PostgreSQL database as the storage backend.
// Every operation runs on its own connection taken from conns.
type PostgresClientStore struct {
	conns  store.ConnProvider
	logger *slog.Logger
}

// NewPostgresClientStore creates a new PostgreSQL implementation of the ClientStore interface.
// It accepts a connection provider (usually the *sql.DB pool) that is owned by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresClientStore(conns store.ConnProvider, logger *slog.Logger) *PostgresClientStore {
	if conns == nil {
		panic("conns cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresClientStore{
		conns:  conns,
		logger: logger.With(slog.String("component", "client_store")),
	}
}

// Ensure PostgresClientStore implements store.ClientStore interface
var _ store.ClientStore = (*PostgresClientStore)(nil)

// BootstrapSchema implements store.ClientStore.BootstrapSchema
// It drops accounts and clients, recreates clients, and optionally seeds the
// demo clients, all in one transaction. Any failure is reported as store.ErrUnavailable.
func (s *PostgresClientStore) BootstrapSchema(ctx context.Context, seed bool) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := withConn(ctx, s.conns, log, func(conn *sql.Conn) error {
		return store.RunInTransaction(ctx, conn, func(ctx context.Context, tx *sql.Tx) error {
			statements := []string{dropAccountsTableSQL, dropClientsTableSQL, createClientsTableSQL}
			if seed {
				statements = append(statements, seedClientsSQL)
			}
			for _, stmt := range statements {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err != nil {
		log.Error("failed to bootstrap clients schema",
			slog.String("error", redact.Error(err)),
			slog.Bool("seed", seed))
		return unavailable("bootstrap clients", err)
	}

	log.Info("clients schema bootstrapped", slog.Bool("seed", seed))
	return nil
}

// GetByID implements store.ClientStore.GetByID
// Returns store.ErrClientNotFound if the client does not exist.
func (s *PostgresClientStore) GetByID(ctx context.Context, id int) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving client by ID", slog.Int("client_id", id))

	query := `
		SELECT client_id, client_first_name, client_last_name
		FROM clients
		WHERE client_id = $1
	`

	var client domain.Client
	err := withConn(ctx, s.conns, log, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, query, id).Scan(
			&client.ID,
			&client.FirstName,
			&client.LastName,
		)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("client not found", slog.Int("client_id", id))
			return nil, fmt.Errorf("%w: id %d", store.ErrClientNotFound, id)
		}
		log.Error("failed to get client by ID",
			slog.String("error", redact.Error(err)),
			slog.Int("client_id", id))
		return nil, MapError(err)
	}

	return &client, nil
}

// GetAll implements store.ClientStore.GetAll
func (s *PostgresClientStore) GetAll(ctx context.Context) ([]*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT client_id, client_first_name, client_last_name
		FROM clients
		ORDER BY client_id
	`

	clients := make([]*domain.Client, 0)
	err := withConn(ctx, s.conns, log, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var client domain.Client
			if err := rows.Scan(&client.ID, &client.FirstName, &client.LastName); err != nil {
				return err
			}
			clients = append(clients, &client)
		}
		return rows.Err()
	})
	if err != nil {
		log.Error("failed to list clients", slog.String("error", redact.Error(err)))
		return nil, MapError(err)
	}

	log.Debug("clients listed", slog.Int("count", len(clients)))
	return clients, nil
}

// Insert implements store.ClientStore.Insert
// The id is generated by the database and read back with RETURNING.
func (s *PostgresClientStore) Insert(
	ctx context.Context,
	firstName, lastName string,
) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO clients (client_first_name, client_last_name)
		VALUES ($1, $2)
		RETURNING client_id
	`

	client := &domain.Client{FirstName: firstName, LastName: lastName}
	err := withConn(ctx, s.conns, log, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, query, firstName, lastName).Scan(&client.ID)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("client insert returned no row",
				slog.String("first_name", firstName),
				slog.String("last_name", lastName))
			return nil, store.ErrClientAddFailed
		}
		log.Error("failed to insert client",
			slog.String("error", redact.Error(err)),
			slog.String("first_name", firstName),
			slog.String("last_name", lastName))
		return nil, MapError(err)
	}

	log.Info("client inserted", slog.Int("client_id", client.ID))
	return client, nil
}

// InsertWithID implements store.ClientStore.InsertWithID
// The identity sequence is moved past the largest id in the same transaction,
// so later generated ids never collide with the explicit one.
// Returns store.ErrClientExists if the id is already taken.
func (s *PostgresClientStore) InsertWithID(
	ctx context.Context,
	id int,
	firstName, lastName string,
) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	insertQuery := `
		INSERT INTO clients (client_id, client_first_name, client_last_name)
		VALUES ($1, $2, $3)
	`
	syncSequenceQuery := `
		SELECT setval(
			pg_get_serial_sequence('clients', 'client_id'),
			GREATEST((SELECT MAX(client_id) FROM clients), 1)
		)
	`

	err := withConn(ctx, s.conns, log, func(conn *sql.Conn) error {
		return store.RunInTransaction(ctx, conn, func(ctx context.Context, tx *sql.Tx) error {
			result, err := tx.ExecContext(ctx, insertQuery, id, firstName, lastName)
			if err != nil {
				if IsUniqueViolation(err) {
					return MapUniqueViolation(err, store.ErrClientExists)
				}
				return err
			}
			if err := CheckRowsAffected(result, store.ErrClientAddFailed); err != nil {
				return err
			}

			_, err = tx.ExecContext(ctx, syncSequenceQuery)
			return err
		})
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			log.Debug("client id already taken", slog.Int("client_id", id))
			return nil, fmt.Errorf("%w: id %d", store.ErrClientExists, id)
		}
		log.Error("failed to insert client with explicit ID",
			slog.String("error", redact.Error(err)),
			slog.Int("client_id", id))
		return nil, MapError(err)
	}

	log.Info("client inserted with explicit ID", slog.Int("client_id", id))
	return &domain.Client{ID: id, FirstName: firstName, LastName: lastName}, nil
}

// Update implements store.ClientStore.Update
// Both name columns are written in a single transaction; if either statement
// fails neither change is visible.
// Returns store.ErrClientNotFound if the client does not exist.
func (s *PostgresClientStore) Update(
	ctx context.Context,
	id int,
	firstName, lastName string,
) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("updating client name",
		slog.Int("client_id", id),
		slog.String("first_name", firstName),
		slog.String("last_name", lastName))

	updateFirstNameQuery := `UPDATE clients SET client_first_name = $1 WHERE client_id = $2`
	updateLastNameQuery := `UPDATE clients SET client_last_name = $1 WHERE client_id = $2`

	err := withConn(ctx, s.conns, log, func(conn *sql.Conn) error {
		return store.RunInTransaction(ctx, conn, func(ctx context.Context, tx *sql.Tx) error {
			result, err := tx.ExecContext(ctx, updateFirstNameQuery, firstName, id)
			if err != nil {
				return err
			}
			if err := CheckRowsAffected(result, store.ErrClientNotFound); err != nil {
				return err
			}

			result, err = tx.ExecContext(ctx, updateLastNameQuery, lastName, id)
			if err != nil {
				return err
			}
			return CheckRowsAffected(result, store.ErrClientNotFound)
		})
	})
	if err != nil {
		if errors.Is(err, store.ErrClientNotFound) {
			log.Debug("client not found for update", slog.Int("client_id", id))
			return nil, fmt.Errorf("%w: id %d", store.ErrClientNotFound, id)
		}
		log.Error("failed to update client",
			slog.String("error", redact.Error(err)),
			slog.Int("client_id", id))
		return nil, MapError(err)
	}

	log.Info("client updated", slog.Int("client_id", id))
	return &domain.Client{ID: id, FirstName: firstName, LastName: lastName}, nil
}
