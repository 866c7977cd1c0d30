package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/skillpilot-api/internal/domain"
	"github.com/phrazzld/skillpilot-api/internal/redact"
	"github.com/phrazzld/skillpilot-api/internal/service/auth"
	"github.com/phrazzld/skillpilot-api/internal/store"
)

// RegisterResult is the outcome of a registration attempt.
type RegisterResult int

const (
	// RegisterFailed means nothing was stored because hashing or storage failed.
	RegisterFailed RegisterResult = iota
	// RegisterCreated means a new account row was written.
	RegisterCreated
	// RegisterAlreadyExists means the username was taken; storage is unchanged.
	RegisterAlreadyExists
)

// String returns the lowercase name of the result.
func (r RegisterResult) String() string {
	switch r {
	case RegisterCreated:
		return "created"
	case RegisterAlreadyExists:
		return "already_exists"
	default:
		return "failed"
	}
}

// CredentialService registers accounts and verifies passwords.
type CredentialService interface {
	// Register hashes password with a fresh salt and stores the account.
	// A taken username yields RegisterAlreadyExists with a nil error.
	// RegisterFailed is always accompanied by a non-nil error.
	Register(ctx context.Context, username, password string) (RegisterResult, error)

	// Verify reports whether password matches the stored hash for username.
	// An unknown username is reported as false with a nil error; the error is
	// non-nil only when the account could not be read.
	Verify(ctx context.Context, username, password string) (bool, error)
}

// CredentialServiceImpl implements the CredentialService interface
type CredentialServiceImpl struct {
	userStore store.UserStore
	db        *sql.DB
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	logger    *slog.Logger
}

// NewCredentialService creates a new CredentialService
func NewCredentialService(
	userStore store.UserStore,
	db *sql.DB,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) (CredentialService, error) {
	if userStore == nil {
		return nil, fmt.Errorf("userStore cannot be nil")
	}
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if hasher == nil {
		return nil, fmt.Errorf("hasher cannot be nil")
	}
	if verifier == nil {
		return nil, fmt.Errorf("verifier cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CredentialServiceImpl{
		userStore: userStore,
		db:        db,
		hasher:    hasher,
		verifier:  verifier,
		logger:    logger.With("component", "credential_service"),
	}, nil
}

// Register implements CredentialService.Register
func (s *CredentialServiceImpl) Register(
	ctx context.Context,
	username, password string,
) (RegisterResult, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to hash password",
			"error", redact.Error(err),
			"username", username)
		return RegisterFailed, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	account := domain.NewAccount(username, password)
	account.PasswordHash = hash

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, account)
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.DebugContext(ctx, "attempted to register existing username",
				"username", username)
			return RegisterAlreadyExists, nil
		}
		s.logger.ErrorContext(ctx, "failed to save account to database",
			"error", redact.Error(err),
			"username", username)
		return RegisterFailed, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	s.logger.InfoContext(ctx, "account registered", "username", username)
	return RegisterCreated, nil
}

// Verify implements CredentialService.Verify
func (s *CredentialServiceImpl) Verify(
	ctx context.Context,
	username, password string,
) (bool, error) {
	account, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.DebugContext(ctx, "login for unknown username", "username", username)
			return false, nil
		}
		s.logger.ErrorContext(ctx, "failed to retrieve account",
			"error", redact.Error(err),
			"username", username)
		return false, fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}

	if err := s.verifier.Compare(account.PasswordHash, password); err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			// A malformed stored hash can never match.
			s.logger.WarnContext(ctx, "stored password hash is unusable",
				"error", err,
				"username", username)
		}
		return false, nil
	}

	return true, nil
}
