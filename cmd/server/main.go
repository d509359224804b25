// Package main implements the entry point for the bank API server, which
// stores clients and their accounts in PostgreSQL and serves them over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Both subcommands share the --env-file flag.
func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:           "bank-api",
		Short:         "Client and account API backed by PostgreSQL",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil,
		"dotenv file(s) loaded before the environment is read (default .env if present)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), envFiles)
		},
	}

	var seed bool
	bootstrapCmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Drop and recreate the clients and accounts tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			var seedOverride *bool
			if cmd.Flags().Changed("seed") {
				seedOverride = &seed
			}
			return runBootstrap(cmd.Context(), envFiles, seedOverride)
		},
	}
	bootstrapCmd.Flags().BoolVar(&seed, "seed", true, "insert the demo clients and accounts (default from bootstrap.seed)")

	root.AddCommand(serveCmd, bootstrapCmd)
	return root
}

// runServe loads configuration, connects, optionally bootstraps the schema
// and serves until ctx is canceled.
func runServe(ctx context.Context, envFiles []string) error {
	cfg, err := loadAppConfig(envFiles)
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if cfg.Bootstrap.Enabled {
		if err := app.bootstrapSchema(ctx, cfg.Bootstrap.Seed); err != nil {
			app.cleanup()
			return err
		}
	}

	return app.Run(ctx)
}

// runBootstrap recreates the schema and exits.
func runBootstrap(ctx context.Context, envFiles []string, seedOverride *bool) error {
	cfg, err := loadAppConfig(envFiles)
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	seed := cfg.Bootstrap.Seed
	if seedOverride != nil {
		seed = *seedOverride
	}
	return app.bootstrapSchema(ctx, seed)
}
