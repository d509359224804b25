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

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
// Every operation runs on its own connection taken from conns.
type PostgresAccountStore struct {
	conns  store.ConnProvider
	logger *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the AccountStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresAccountStore(conns store.ConnProvider, logger *slog.Logger) *PostgresAccountStore {
	if conns == nil {
		panic("conns cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountStore{
		conns:  conns,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

const selectAccountColumns = `SELECT account_id, client_id, amount FROM accounts`

// BootstrapSchema implements store.AccountStore.BootstrapSchema
// Seeding references the demo clients, so it only succeeds after the clients
// table was bootstrapped with seed enabled.
func (s *PostgresAccountStore) BootstrapSchema(ctx context.Context, seed bool) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := withConn(ctx, s.conns, log, func(conn *sql.Conn) error {
		var clientsExist bool
		if err := conn.QueryRowContext(ctx, clientsTableExistsSQL).Scan(&clientsExist); err != nil {
			return err
		}
		if !clientsExist {
			return fmt.Errorf("%w: clients table does not exist", store.ErrUnavailable)
		}

		return store.RunInTransaction(ctx, conn, func(ctx context.Context, tx *sql.Tx) error {
			statements := []string{
				dropAccountsTableSQL,
				createAccountsTableSQL,
				createAccountsClientIndexSQL,
			}
			if seed {
				statements = append(statements, seedAccountsSQL)
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
		log.Error("failed to bootstrap accounts schema",
			slog.String("error", redact.Error(err)),
			slog.Bool("seed", seed))
		return unavailable("bootstrap accounts", err)
	}

	log.Info("accounts schema bootstrapped", slog.Bool("seed", seed))
	return nil
}

// CreateForClient implements store.AccountStore.CreateForClient
// Returns store.ErrClientNotFound if the client does not exist and
// store.ErrAccountAddFailed if the insert produced no row.
func (s *PostgresAccountStore) CreateForClient(
	ctx context.Context,
	clientID, amount int,
) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO accounts (client_id, amount)
		VALUES ($1, $2)
		RETURNING account_id, client_id, amount
	`

	var account domain.Account
	err := withConn(ctx, s.conns, log, func(conn *sql.Conn) error {
		if err := requireClient(ctx, conn, clientID); err != nil {
			return err
		}

		err := conn.QueryRowContext(ctx, query, clientID, amount).Scan(
			&account.ID,
			&account.ClientID,
			&account.Amount,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrAccountAddFailed
		}
		return err
	})
	if err != nil {
		if store.IsNotFoundError(err) || errors.Is(err, store.ErrAddFailed) || IsForeignKeyViolation(err) {
			mapped := MapError(err)
			log.Debug("account not created",
				slog.String("reason", mapped.Error()),
				slog.Int("client_id", clientID))
			return nil, mapped
		}
		log.Error("failed to create account",
			slog.String("error", redact.Error(err)),
			slog.Int("client_id", clientID),
			slog.Int("amount", amount))
		return nil, MapError(err)
	}

	log.Info("account created",
		slog.Int("account_id", account.ID),
		slog.Int("client_id", account.ClientID),
		slog.Int("amount", account.Amount))
	return &account, nil
}

// ListByClient implements store.AccountStore.ListByClient
// An unknown client yields an empty, non-nil slice.
func (s *PostgresAccountStore) ListByClient(
	ctx context.Context,
	clientID int,
) ([]*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := selectAccountColumns + ` WHERE client_id = $1 ORDER BY account_id`

	var accounts []*domain.Account
	err := withConn(ctx, s.conns, log, func(conn *sql.Conn) error {
		var err error
		accounts, err = queryAccounts(ctx, conn, query, clientID)
		return err
	})
	if err != nil {
		log.Error("failed to list accounts",
			slog.String("error", redact.Error(err)),
			slog.Int("client_id", clientID))
		return nil, MapError(err)
	}

	log.Debug("accounts listed",
		slog.Int("client_id", clientID),
		slog.Int("count", len(accounts)))
	return accounts, nil
}

// GetByClientAndAccount implements store.AccountStore.GetByClientAndAccount
func (s *PostgresAccountStore) GetByClientAndAccount(
	ctx context.Context,
	clientID, accountID int,
) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var account *domain.Account
	err := withConn(ctx, s.conns, log, func(conn *sql.Conn) error {
		var err error
		account, err = lookupOwnedAccount(ctx, conn, clientID, accountID)
		return err
	})
	if err != nil {
		return nil, s.logLookupFailure(log, "get", err, clientID, accountID)
	}

	return account, nil
}

// ListBetweenAmounts implements store.AccountStore.ListBetweenAmounts
// Both bounds are inclusive. The bounds are not checked against each other here.
func (s *PostgresAccountStore) ListBetweenAmounts(
	ctx context.Context,
	clientID, low, high int,
) ([]*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	hasAccountsQuery := `SELECT EXISTS (SELECT 1 FROM accounts WHERE client_id = $1)`
	rangeQuery := selectAccountColumns + `
		WHERE client_id = $1 AND amount BETWEEN $2 AND $3
		ORDER BY account_id
	`

	var accounts []*domain.Account
	err := withConn(ctx, s.conns, log, func(conn *sql.Conn) error {
		var hasAccounts bool
		if err := conn.QueryRowContext(ctx, hasAccountsQuery, clientID).Scan(&hasAccounts); err != nil {
			return err
		}
		if !hasAccounts {
			return fmt.Errorf("%w: id %d has no accounts", store.ErrClientNotFound, clientID)
		}

		var err error
		accounts, err = queryAccounts(ctx, conn, rangeQuery, clientID, low, high)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrClientNotFound) {
			log.Debug("client has no accounts", slog.Int("client_id", clientID))
			return nil, err
		}
		log.Error("failed to list accounts between amounts",
			slog.String("error", redact.Error(err)),
			slog.Int("client_id", clientID),
			slog.Int("low", low),
			slog.Int("high", high))
		return nil, MapError(err)
	}

	log.Debug("accounts listed between amounts",
		slog.Int("client_id", clientID),
		slog.Int("low", low),
		slog.Int("high", high),
		slog.Int("count", len(accounts)))
	return accounts, nil
}

// UpdateAmount implements store.AccountStore.UpdateAmount
func (s *PostgresAccountStore) UpdateAmount(
	ctx context.Context,
	clientID, accountID, newAmount int,
) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `UPDATE accounts SET amount = $1 WHERE account_id = $2 AND client_id = $3`

	var account *domain.Account
	err := withConn(ctx, s.conns, log, func(conn *sql.Conn) error {
		if err := requireClient(ctx, conn, clientID); err != nil {
			return err
		}

		var err error
		account, err = lookupOwnedAccount(ctx, conn, clientID, accountID)
		if err != nil {
			return err
		}

		result, err := conn.ExecContext(ctx, query, newAmount, accountID, clientID)
		if err != nil {
			return err
		}
		return CheckRowsAffected(result, store.NewStoreError(
			"account", "update_amount", "no rows updated", store.ErrUnavailable))
	})
	if err != nil {
		return nil, s.logLookupFailure(log, "update", err, clientID, accountID)
	}

	account.Amount = newAmount
	log.Info("account amount updated",
		slog.Int("account_id", accountID),
		slog.Int("client_id", clientID),
		slog.Int("amount", newAmount))
	return account, nil
}

// Delete implements store.AccountStore.Delete
func (s *PostgresAccountStore) Delete(
	ctx context.Context,
	clientID, accountID int,
) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM accounts WHERE account_id = $1 AND client_id = $2`

	var account *domain.Account
	err := withConn(ctx, s.conns, log, func(conn *sql.Conn) error {
		if err := requireClient(ctx, conn, clientID); err != nil {
			return err
		}

		var err error
		account, err = lookupOwnedAccount(ctx, conn, clientID, accountID)
		if err != nil {
			return err
		}

		result, err := conn.ExecContext(ctx, query, accountID, clientID)
		if err != nil {
			return err
		}
		return CheckRowsAffected(result, store.NewStoreError(
			"account", "delete", "no rows deleted", store.ErrUnavailable))
	})
	if err != nil {
		return nil, s.logLookupFailure(log, "delete", err, clientID, accountID)
	}

	log.Info("account deleted",
		slog.Int("account_id", accountID),
		slog.Int("client_id", clientID),
		slog.Int("amount", account.Amount))
	return account, nil
}

// logLookupFailure logs expected lookup outcomes at debug and faults at error,
// and returns the classified error.
func (s *PostgresAccountStore) logLookupFailure(
	log *slog.Logger,
	operation string,
	err error,
	clientID, accountID int,
) error {
	mapped := MapError(err)
	if store.IsNotFoundError(mapped) || errors.Is(mapped, store.ErrAccountClientMismatch) {
		log.Debug("account lookup failed",
			slog.String("operation", operation),
			slog.String("reason", mapped.Error()),
			slog.Int("client_id", clientID),
			slog.Int("account_id", accountID))
		return mapped
	}

	log.Error("account operation failed",
		slog.String("operation", operation),
		slog.String("error", redact.Error(err)),
		slog.Int("client_id", clientID),
		slog.Int("account_id", accountID))
	return mapped
}

// requireClient returns store.ErrClientNotFound unless a row for clientID exists in clients.
func requireClient(ctx context.Context, q store.DBTX, clientID int) error {
	var exists bool
	err := q.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM clients WHERE client_id = $1)`, clientID,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: id %d", store.ErrClientNotFound, clientID)
	}
	return nil
}

// lookupOwnedAccount loads an account by id and checks that clientID owns it.
func lookupOwnedAccount(
	ctx context.Context,
	q store.DBTX,
	clientID, accountID int,
) (*domain.Account, error) {
	var account domain.Account
	err := q.QueryRowContext(ctx, selectAccountColumns+` WHERE account_id = $1`, accountID).Scan(
		&account.ID,
		&account.ClientID,
		&account.Amount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", store.ErrAccountNotFound, accountID)
		}
		return nil, err
	}

	if !account.OwnedBy(clientID) {
		return nil, fmt.Errorf(
			"%w: account %d is owned by client %d, not %d",
			store.ErrAccountClientMismatch,
			accountID,
			account.ClientID,
			clientID,
		)
	}

	return &account, nil
}

func queryAccounts(
	ctx context.Context,
	q store.DBTX,
	query string,
	args ...any,
) ([]*domain.Account, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(&account.ID, &account.ClientID, &account.Amount); err != nil {
			return nil, err
		}
		accounts = append(accounts, &account)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}
