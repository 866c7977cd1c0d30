package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/skillpilot-api/internal/domain"
)

// UserStore defines the interface for account persistence.
//
// Implementations rely on the storage engine's primary-key constraint for
// username uniqueness; no application-level locking is involved.
type UserStore interface {
	// Create inserts a new account. The account must already carry its
	// PasswordHash; the plaintext Password is never written.
	// Returns ErrUsernameExists if the username is taken, leaving the
	// existing record untouched.
	// Returns an error wrapping ErrStorageUnavailable if the database fails.
	Create(ctx context.Context, account *domain.Account) error

	// GetByUsername retrieves an account by its username.
	// Returns ErrUserNotFound if the account does not exist.
	// The returned account carries PasswordHash but never the plaintext password.
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// The transaction is created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
