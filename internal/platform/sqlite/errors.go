package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/skillpilot-api/internal/store"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// MapError maps a SQLite error to the store error taxonomy.
//
// Constraint violations become store.ErrDuplicate or store.ErrInvalidEntity,
// missing rows become store.ErrNotFound, and everything else is treated as
// the storage itself failing (store.ErrStorageUnavailable). The original
// error stays in the chain for logging.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", store.ErrNotFound, err)
	}

	switch {
	case IsUniqueViolation(err):
		return fmt.Errorf("%w: %w", store.ErrDuplicate, err)
	case isConstraintError(err):
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	return fmt.Errorf("%w: %w", store.ErrStorageUnavailable, err)
}

// IsUniqueViolation reports whether err is a PRIMARY KEY or UNIQUE violation.
func IsUniqueViolation(err error) bool {
	code, ok := errorCode(err)
	if !ok {
		return false
	}
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// Primary result code only, when extended codes are off
		return strings.Contains(err.Error(), "UNIQUE constraint failed")
	}
	return false
}

// IsBusy reports whether err is a lock contention error.
func IsBusy(err error) bool {
	code, ok := errorCode(err)
	if !ok {
		return false
	}
	return code == sqlite3.SQLITE_BUSY || code == sqlite3.SQLITE_LOCKED
}

func isConstraintError(err error) bool {
	code, ok := errorCode(err)
	if !ok {
		return false
	}
	// Extended constraint codes share the low byte of SQLITE_CONSTRAINT
	return code&0xff == sqlite3.SQLITE_CONSTRAINT
}

func errorCode(err error) (int, bool) {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return 0, false
	}
	return sqliteErr.Code(), true
}
