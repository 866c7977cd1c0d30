package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/skillpilot-api/internal/config"
	"github.com/phrazzld/skillpilot-api/internal/generation"
	"github.com/phrazzld/skillpilot-api/internal/platform/anthropic"
	"github.com/phrazzld/skillpilot-api/internal/platform/gemini"
	"github.com/phrazzld/skillpilot-api/internal/platform/openai"
	"github.com/phrazzld/skillpilot-api/internal/service"
	"github.com/phrazzld/skillpilot-api/internal/service/auth"
	"github.com/phrazzld/skillpilot-api/internal/session"
	"github.com/phrazzld/skillpilot-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config

	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore

	credentials service.CredentialService
	session     *session.State
	recommender generation.Recommender
}

// newApplication creates a new application instance with all dependencies initialized.
// The database connection must already be open; it is closed by cleanup.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		db:      db,
		session: session.New(),
	}

	var err error
	app.userStore, err = newUserStore(cfg.Database.Driver, db, logger)
	if err != nil {
		return nil, err
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.credentials, err = service.NewCredentialService(
		app.userStore,
		db,
		hasher,
		auth.NewBcryptVerifier(),
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential service: %w", err)
	}
	logger.Info("Credential service initialized", "bcrypt_cost", hasher.Cost())

	app.recommender, err = newRecommender(cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create recommender: %w", err)
	}
	logger.Info("Pathway recommender initialized",
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.Model)

	logger.Info("Application initialized successfully")
	return app, nil
}

// providerFactory returns the ProviderFactory for the configured provider.
func providerFactory(cfg config.LLMConfig) (generation.ProviderFactory, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return gemini.Factory(cfg.Model, ""), nil
	case config.ProviderOpenAI:
		return openai.Factory(cfg.Model, ""), nil
	case config.ProviderAnthropic:
		return anthropic.Factory(cfg.Model, ""), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}

func newRecommender(cfg config.LLMConfig, logger *slog.Logger) (generation.Recommender, error) {
	factory, err := providerFactory(cfg)
	if err != nil {
		return nil, err
	}

	prompts, err := generation.NewPromptBuilder("", cfg.MaxTopics)
	if err != nil {
		return nil, err
	}

	return generation.NewRecommender(factory, prompts, generation.RecommenderConfig{
		MaxTokens: cfg.MaxTokens,
		MaxTopics: cfg.MaxTopics,
		Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
		Retry: generation.RetryConfig{
			MaxRetries: cfg.MaxRetries,
			BaseDelay:  time.Duration(cfg.RetryDelaySeconds) * time.Second,
		},
	}, logger)
}

// Run starts the application server, handling lifecycle and cleanup.
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
