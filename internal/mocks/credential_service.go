package mocks

import (
	"context"

	"github.com/phrazzld/skillpilot-api/internal/service"
)

// MockCredentialService implements service.CredentialService for testing
type MockCredentialService struct {
	RegisterFn func(ctx context.Context, username, password string) (service.RegisterResult, error)
	VerifyFn   func(ctx context.Context, username, password string) (bool, error)
}

// Register implements the CredentialService interface
func (m *MockCredentialService) Register(
	ctx context.Context,
	username, password string,
) (service.RegisterResult, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, username, password)
	}
	return service.RegisterCreated, nil
}

// Verify implements the CredentialService interface
func (m *MockCredentialService) Verify(ctx context.Context, username, password string) (bool, error) {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, username, password)
	}
	return false, nil
}
