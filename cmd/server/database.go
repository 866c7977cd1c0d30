package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/skillpilot-api/internal/config"
	"github.com/phrazzld/skillpilot-api/internal/platform/postgres"
	"github.com/phrazzld/skillpilot-api/internal/platform/sqlite"
	"github.com/phrazzld/skillpilot-api/internal/store"
)

// setupAppDatabase opens the configured database and applies pending migrations.
func setupAppDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = postgres.Open(ctx, cfg.URL, logger)
	case config.DriverSQLite:
		db, err = sqlite.Open(ctx, cfg.Path, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	logger.Info("Database connection established", "driver", cfg.Driver)
	return db, nil
}

// newUserStore returns the UserStore implementation for driver.
func newUserStore(driver string, db *sql.DB, logger *slog.Logger) (store.UserStore, error) {
	switch driver {
	case config.DriverPostgres:
		return postgres.NewPostgresUserStore(db, logger), nil
	case config.DriverSQLite:
		return sqlite.NewSQLiteUserStore(db, logger), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
