package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/phrazzld/skillpilot-api/internal/domain"
	"github.com/phrazzld/skillpilot-api/internal/platform/logger"
	"github.com/phrazzld/skillpilot-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestDB opens a migrated database in a per-test temporary directory.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	l, _ := logger.GetTestLogger(t)
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "users.db"), l)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func hashedAccount(username, hash string) *domain.Account {
	account := domain.NewAccount(username, "")
	account.PasswordHash = hash
	return account
}

func TestSQLiteUserStore_CreateAndGet(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	s := NewSQLiteUserStore(db, nil)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, hashedAccount("ada", "hash-1")))

	got, err := s.GetByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, "ada", got.Username)
	assert.Equal(t, "hash-1", got.PasswordHash)
	assert.Empty(t, got.Password)
}

func TestSQLiteUserStore_CreateDuplicate(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	s := NewSQLiteUserStore(db, nil)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, hashedAccount("ada", "original")))

	err := s.Create(ctx, hashedAccount("ada", "replacement"))
	assert.ErrorIs(t, err, store.ErrUsernameExists)
	assert.False(t, store.IsStorageUnavailable(err))

	got, err := s.GetByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, "original", got.PasswordHash, "duplicate insert must not touch the stored hash")
}

func TestSQLiteUserStore_EmptyUsernameIsStored(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	s := NewSQLiteUserStore(db, nil)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, hashedAccount("", "hash")))
	assert.ErrorIs(t, s.Create(ctx, hashedAccount("", "other")), store.ErrUsernameExists)
}

func TestSQLiteUserStore_CreateRequiresHash(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	s := NewSQLiteUserStore(db, nil)

	err := s.Create(context.Background(), domain.NewAccount("ada", "plaintext"))
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrEmptyPasswordHash)
}

func TestSQLiteUserStore_GetMissing(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	s := NewSQLiteUserStore(db, nil)

	got, err := s.GetByUsername(context.Background(), "nobody")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestSQLiteUserStore_ClosedDatabase(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	l, buf := logger.GetTestLogger(t)
	s := NewSQLiteUserStore(db, l)
	require.NoError(t, db.Close())
	ctx := context.Background()

	err := s.Create(ctx, hashedAccount("ada", "hash"))
	require.Error(t, err)
	assert.True(t, store.IsStorageUnavailable(err))
	assert.False(t, store.IsDuplicateError(err))

	var storeErr *store.StoreError
	assert.True(t, errors.As(err, &storeErr))

	_, err = s.GetByUsername(ctx, "ada")
	require.Error(t, err)
	assert.True(t, store.IsStorageUnavailable(err))
	assert.False(t, store.IsNotFoundError(err))

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	var failures int
	for _, entry := range entries {
		if entry["level"] != "ERROR" {
			continue
		}
		failures++
		assert.Equal(t, false, entry["busy"], "closed database is not lock contention")
	}
	assert.Equal(t, 2, failures)
}

func TestSQLiteUserStore_WithTx(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	s := NewSQLiteUserStore(db, nil)
	ctx := context.Background()

	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.WithTx(tx).Create(ctx, hashedAccount("rolled-back", "hash")); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.Error(t, err)

	_, err = s.GetByUsername(ctx, "rolled-back")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestSQLiteUserStore_ConcurrentDuplicates(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	s := NewSQLiteUserStore(db, nil)
	ctx := context.Background()

	const writers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		dupes   int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Create(ctx, hashedAccount("racer", "hash"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, store.ErrUsernameExists):
				dupes++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, writers-1, dupes)
}
