package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/skillpilot-api/internal/domain"
	"github.com/phrazzld/skillpilot-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection that should be initialized and managed by the caller.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "postgres_user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(ctx context.Context, account *domain.Account) error {
	if err := account.Validate(); err != nil {
		return store.NewStoreError("user", "create", "invalid account", fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password) VALUES ($1, $2)`,
		account.Username, account.PasswordHash)
	if err != nil {
		if IsUniqueViolation(err) {
			s.logger.DebugContext(ctx, "username already exists", slog.String("username", account.Username))
			return store.ErrUsernameExists
		}
		s.logger.ErrorContext(ctx, "failed to insert user", slog.String("error", err.Error()))
		return store.NewStoreError("user", "create", "database operation failed", MapError(err))
	}

	return nil
}

// GetByUsername implements store.UserStore.GetByUsername
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var account domain.Account
	err := s.db.QueryRowContext(ctx,
		`SELECT username, password FROM users WHERE username = $1`,
		username,
	).Scan(&account.Username, &account.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		s.logger.ErrorContext(ctx, "failed to query user", slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "get", "database operation failed", MapError(err))
	}

	return &account, nil
}
