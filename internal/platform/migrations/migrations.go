// Package migrations embeds the schema migrations and applies them with goose.
// The same SQL files serve both the SQLite and the PostgreSQL backends.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedded embed.FS

// FS returns the migration files rooted at the migrations directory.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		// ALLOW-PANIC: the embed pattern guarantees the directory exists
		panic(fmt.Sprintf("migrations: %v", err))
	}
	return sub
}

// Up applies every pending migration to db using the given goose dialect.
func Up(ctx context.Context, db *sql.DB, dialect goose.Dialect, logger *slog.Logger) error {
	provider, err := goose.NewProvider(dialect, db, FS())
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, r := range results {
		logger.InfoContext(ctx, "applied migration",
			"version", r.Source.Version,
			"duration_ms", r.Duration.Milliseconds())
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	logger.DebugContext(ctx, "database schema is up to date",
		"version", version,
		"applied", len(results))

	return nil
}
