package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		err             error
		wantNotFound    bool
		wantDuplicate   bool
		wantUnavailable bool
	}{
		{name: "nil error"},
		{name: "generic error", err: errors.New("some error")},
		{name: "ErrNotFound", err: ErrNotFound, wantNotFound: true},
		{name: "ErrUserNotFound", err: ErrUserNotFound, wantNotFound: true},
		{
			name:         "wrapped ErrUserNotFound",
			err:          fmt.Errorf("failed to find user: %w", ErrUserNotFound),
			wantNotFound: true,
		},
		{name: "ErrDuplicate", err: ErrDuplicate, wantDuplicate: true},
		{name: "ErrUsernameExists", err: ErrUsernameExists, wantDuplicate: true},
		{
			name:          "StoreError wrapping ErrUsernameExists",
			err:           NewStoreError("user", "create", "username taken", ErrUsernameExists),
			wantDuplicate: true,
		},
		{name: "ErrStorageUnavailable", err: ErrStorageUnavailable, wantUnavailable: true},
		{
			name:            "transaction failure counts as unavailable",
			err:             fmt.Errorf("%w: commit: disk full", ErrTransactionFailed),
			wantUnavailable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantNotFound, IsNotFoundError(tt.err))
			assert.Equal(t, tt.wantDuplicate, IsDuplicateError(tt.err))
			assert.Equal(t, tt.wantUnavailable, IsStorageUnavailable(tt.err))
		})
	}
}

func TestUsernameExistsIsNotStorageUnavailable(t *testing.T) {
	t.Parallel()

	// A duplicate identifier must never be reported as a storage failure.
	assert.False(t, IsStorageUnavailable(ErrUsernameExists))
	assert.False(t, IsDuplicateError(ErrStorageUnavailable))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewStoreError("user", "create", "database operation failed", cause)

	assert.Equal(t, "create operation on user failed: database operation failed: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("user", "get", "lookup failed", nil)
	assert.Equal(t, "get operation on user failed: lookup failed", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
