package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/skillpilot-api/internal/domain"
	"github.com/phrazzld/skillpilot-api/internal/store"
)

const (
	insertUserQuery = `INSERT INTO users (username, password) VALUES (?, ?)`
	selectUserQuery = `SELECT username, password FROM users WHERE username = ?`
)

// SQLiteUserStore implements the store.UserStore interface
// using a SQLite database file as the storage backend.
type SQLiteUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSQLiteUserStore creates a new SQLite implementation of the UserStore interface.
// It accepts a database connection that should be initialized and managed by the caller.
func NewSQLiteUserStore(db store.DBTX, logger *slog.Logger) *SQLiteUserStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "sqlite_user_store")),
	}
}

// Ensure SQLiteUserStore implements store.UserStore interface
var _ store.UserStore = (*SQLiteUserStore)(nil)

// WithTx implements store.UserStore.WithTx
func (s *SQLiteUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &SQLiteUserStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.UserStore.Create.
// The insert relies on the username primary key; a concurrent duplicate
// fails atomically inside SQLite.
func (s *SQLiteUserStore) Create(ctx context.Context, account *domain.Account) error {
	if err := account.Validate(); err != nil {
		return store.NewStoreError("user", "create", "invalid account", fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	_, err := s.db.ExecContext(ctx, insertUserQuery, account.Username, account.PasswordHash)
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrDuplicate) {
			s.logger.DebugContext(ctx, "username already exists", slog.String("username", account.Username))
			return store.ErrUsernameExists
		}
		s.logger.ErrorContext(ctx, "failed to insert user",
			slog.String("error", err.Error()),
			slog.Bool("busy", IsBusy(err)))
		return store.NewStoreError("user", "create", "database operation failed", mapped)
	}

	s.logger.DebugContext(ctx, "user created", slog.String("username", account.Username))
	return nil
}

// GetByUsername implements store.UserStore.GetByUsername
func (s *SQLiteUserStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var account domain.Account
	err := s.db.QueryRowContext(ctx, selectUserQuery, username).Scan(&account.Username, &account.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		s.logger.ErrorContext(ctx, "failed to query user",
			slog.String("error", err.Error()),
			slog.Bool("busy", IsBusy(err)))
		return nil, store.NewStoreError("user", "get", "database operation failed", MapError(err))
	}

	return &account, nil
}
