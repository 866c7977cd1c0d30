// Package testdb provides utilities specifically for database testing.
package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phrazzld/skillpilot-api/internal/platform/logger"
	"github.com/phrazzld/skillpilot-api/internal/platform/sqlite"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// DatabaseURLEnv names the variable holding the PostgreSQL URL for integration tests.
const DatabaseURLEnv = "SKILLPILOT_TEST_DATABASE_URL"

// GetTestDatabaseURL returns the PostgreSQL URL for integration tests, or ""
// when none is configured.
func GetTestDatabaseURL() string {
	return os.Getenv(DatabaseURLEnv)
}

// IsIntegrationTestEnvironment reports whether a PostgreSQL URL is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// RequireDatabaseURL returns the integration database URL or skips the test.
func RequireDatabaseURL(t *testing.T) string {
	t.Helper()

	url := GetTestDatabaseURL()
	if url == "" {
		t.Skipf("%s not set - skipping integration test", DatabaseURLEnv)
	}
	return url
}

// OpenSQLite opens a migrated SQLite database in a temporary directory.
// The connection is closed when the test finishes.
func OpenSQLite(t *testing.T) *sql.DB {
	t.Helper()

	l, _ := logger.GetTestLogger(t)
	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "users.db"), l)
	require.NoError(t, err, "Failed to open test database")

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close test database: %v", err)
		}
	})
	return db
}

// WithTx executes a test function within a transaction, automatically rolling back
// after the test completes.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		// sql.ErrTxDone is expected if tx is already committed or rolled back
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}
