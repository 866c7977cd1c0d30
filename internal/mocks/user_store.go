package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/phrazzld/skillpilot-api/internal/domain"
	"github.com/phrazzld/skillpilot-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, account *domain.Account) error
	GetByUsernameFn func(ctx context.Context, username string) (*domain.Account, error)

	// Data for default implementation
	mu       sync.Mutex
	Accounts map[string]*domain.Account
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Accounts: make(map[string]*domain.Account),
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Accounts[account.Username]; exists {
		return store.ErrUsernameExists
	}
	stored := *account
	m.Accounts[account.Username] = &stored
	return nil
}

// GetByUsername implements the UserStore interface
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.Accounts[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	found := *account
	return &found, nil
}

// WithTx implements the UserStore interface.
// The mock ignores the transaction and returns itself.
func (m *MockUserStore) WithTx(_ *sql.Tx) store.UserStore {
	return m
}
