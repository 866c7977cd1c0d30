// Package main implements the entry point for the SkillPilot API server,
// which stores user credentials and serves learning pathways from a static
// catalog or an external text-generation provider.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/skillpilot-api/internal/config"
	"github.com/phrazzld/skillpilot-api/internal/platform/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("skillpilot-api: %v", err)
	}
}

// run loads configuration, wires dependencies and serves until shutdown.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := setupAppDatabase(ctx, cfg.Database, l)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, l, db)
	if err != nil {
		if cerr := db.Close(); cerr != nil {
			l.Error("Error closing database connection", "error", cerr)
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver,
		"llm_provider", cfg.LLM.Provider)

	return cfg, nil
}
