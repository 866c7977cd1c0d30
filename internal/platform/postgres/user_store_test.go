package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/skillpilot-api/internal/domain"
	"github.com/phrazzld/skillpilot-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	insertPattern = regexp.QuoteMeta(`INSERT INTO users (username, password) VALUES ($1, $2)`)
	selectPattern = regexp.QuoteMeta(`SELECT username, password FROM users WHERE username = $1`)
)

func newMockStore(t *testing.T) (*PostgresUserStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewPostgresUserStore(db, nil), mock
}

func account(username, hash string) *domain.Account {
	a := domain.NewAccount(username, "")
	a.PasswordHash = hash
	return a
}

func TestPostgresUserStore_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		execErr     error
		wantErrIs   error
		unavailable bool
	}{
		{name: "inserts row"},
		{
			name:      "unique violation maps to username exists",
			execErr:   &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_pkey"},
			wantErrIs: store.ErrUsernameExists,
		},
		{
			name:        "connection failure maps to storage unavailable",
			execErr:     errors.New("dial tcp: connection refused"),
			wantErrIs:   store.ErrStorageUnavailable,
			unavailable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, mock := newMockStore(t)
			exec := mock.ExpectExec(insertPattern).WithArgs("ada", "hash")
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := s.Create(context.Background(), account("ada", "hash"))
			if tt.wantErrIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErrIs)
			}
			assert.Equal(t, tt.unavailable, store.IsStorageUnavailable(err))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresUserStore_CreateRequiresHash(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)

	err := s.Create(context.Background(), domain.NewAccount("ada", "plaintext"))
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.NoError(t, mock.ExpectationsWereMet(), "no query is issued for an invalid account")
}

func TestPostgresUserStore_GetByUsername(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		s, mock := newMockStore(t)
		mock.ExpectQuery(selectPattern).WithArgs("ada").
			WillReturnRows(sqlmock.NewRows([]string{"username", "password"}).AddRow("ada", "hash"))

		got, err := s.GetByUsername(context.Background(), "ada")
		require.NoError(t, err)
		assert.Equal(t, "ada", got.Username)
		assert.Equal(t, "hash", got.PasswordHash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		s, mock := newMockStore(t)
		mock.ExpectQuery(selectPattern).WithArgs("nobody").WillReturnError(sql.ErrNoRows)

		got, err := s.GetByUsername(context.Background(), "nobody")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("database failure", func(t *testing.T) {
		t.Parallel()
		s, mock := newMockStore(t)
		mock.ExpectQuery(selectPattern).WithArgs("ada").WillReturnError(sql.ErrConnDone)

		_, err := s.GetByUsername(context.Background(), "ada")
		assert.True(t, store.IsStorageUnavailable(err))
		assert.False(t, store.IsNotFoundError(err))
	})
}

func TestPostgresUserStore_WithTx(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	s := NewPostgresUserStore(db, nil)
	mock.ExpectBegin()
	mock.ExpectExec(insertPattern).WithArgs("ada", "hash").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		return s.WithTx(tx).Create(ctx, account("ada", "hash"))
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
