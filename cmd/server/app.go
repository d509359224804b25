package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/bank-api/internal/api/middleware"
	"github.com/phrazzld/bank-api/internal/config"
	"github.com/phrazzld/bank-api/internal/platform/logger"
	"github.com/phrazzld/bank-api/internal/platform/postgres"
	"github.com/phrazzld/bank-api/internal/service"
	"github.com/phrazzld/bank-api/internal/store"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	clientStore  store.ClientStore
	accountStore store.AccountStore

	// Services
	clientService  service.ClientService
	accountService service.AccountService

	metrics *middleware.Metrics
}

// newApplication wires stores, services and metrics on top of an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.clientStore = postgres.NewPostgresClientStore(db, logger)
	app.accountStore = postgres.NewPostgresAccountStore(db, logger)

	var err error
	app.clientService, err = service.NewClientService(app.clientStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create client service: %w", err)
	}

	app.accountService, err = service.NewAccountService(
		app.accountStore,
		service.AccountServiceConfig{EmptyListAsNotFound: cfg.Accounts.EmptyListAsNotFound},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	app.metrics = middleware.NewMetrics(collectors.NewDBStatsCollector(db, "bank"))

	logger.Info("Application initialized successfully",
		"empty_list_as_not_found", cfg.Accounts.EmptyListAsNotFound)
	return app, nil
}

// bootstrapSchema recreates the clients table, then the accounts table that
// references it. The run is tagged with a correlation id in the logs.
func (app *application) bootstrapSchema(ctx context.Context, seed bool) error {
	log := app.logger.With(slog.String("bootstrap_id", uuid.NewString()))
	ctx = logger.WithLogger(ctx, log)

	log.Info("bootstrapping schema", slog.Bool("seed", seed))

	if err := app.clientStore.BootstrapSchema(ctx, seed); err != nil {
		return fmt.Errorf("failed to bootstrap clients table: %w", err)
	}
	if err := app.accountStore.BootstrapSchema(ctx, seed); err != nil {
		return fmt.Errorf("failed to bootstrap accounts table: %w", err)
	}

	log.Info("schema bootstrap completed")
	return nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
