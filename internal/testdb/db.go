// Package testdb provides utilities specifically for database testing.
// It maintains a clean dependency structure by only depending on store interfaces
// and standard database packages, not on specific implementations.
package testdb

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/bank-api/internal/ciutil"
	"github.com/phrazzld/bank-api/internal/store"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// GetTestDatabaseURL returns the database URL for tests.
// It checks DATABASE_URL and BANK_TEST_DB_URL environment variables
// in that order, returning the first non-empty value.
func GetTestDatabaseURL() string {
	return ciutil.GetEnvWithFallbacks([]string{ciutil.EnvDatabaseURL, ciutil.EnvBankTestDBURL}, "", nil)
}

// IsIntegrationTestEnvironment returns true if a test database URL is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// GetTestDBWithT returns a database connection for testing, with t.Helper() support.
// The test is skipped when no database URL is set, except in CI where a
// missing database fails the test.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		if ciutil.IsCI() {
			t.Fatal("DATABASE_URL or BANK_TEST_DB_URL must be set in CI")
		}
		t.Skip("DATABASE_URL or BANK_TEST_DB_URL not set - skipping integration test")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "Failed to open database connection to %s", ciutil.MaskSensitiveValue(dbURL))

	// Configure connection pool
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "Database ping failed for %s", ciutil.MaskSensitiveValue(dbURL))

	t.Cleanup(func() {
		CleanupDB(t, db)
	})

	return db
}

// ResetSchema recreates both tables through the stores' bootstrap operations.
// Tests that call it share one database and must not run in parallel.
func ResetSchema(t *testing.T, clients store.ClientStore, accounts store.AccountStore, seed bool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	require.NoError(t, clients.BootstrapSchema(ctx, seed), "Failed to bootstrap clients")
	require.NoError(t, accounts.BootstrapSchema(ctx, seed), "Failed to bootstrap accounts")
}

// CleanupDB properly closes a database connection, logging any errors.
func CleanupDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if db == nil {
		return
	}

	if err := db.Close(); err != nil {
		t.Logf("Warning: failed to close database connection: %v", err)
	}
}
