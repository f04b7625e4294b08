package mocks

import (
	"context"

	"github.com/abdelmajidelayachi/task-manager/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	// GenerateTokenFn allows test cases to mock the GenerateToken behavior
	GenerateTokenFn func(ctx context.Context, username string) (string, error)

	// ExtractUsernameFn allows test cases to mock the ExtractUsername behavior
	ExtractUsernameFn func(ctx context.Context, tokenString string) (string, error)

	// ValidateTokenFn allows test cases to mock the ValidateToken behavior
	ValidateTokenFn func(ctx context.Context, tokenString, expectedUsername string) bool

	// Default values used when functions aren't explicitly defined
	Token      string
	Username   string
	Err        error
	ExtractErr error
	Valid      bool
}

// GenerateToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateToken(ctx context.Context, username string) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, username)
	}

	return m.Token, m.Err
}

// ExtractUsername implements the auth.JWTService interface
func (m *MockJWTService) ExtractUsername(ctx context.Context, tokenString string) (string, error) {
	if m.ExtractUsernameFn != nil {
		return m.ExtractUsernameFn(ctx, tokenString)
	}

	return m.Username, m.ExtractErr
}

// ValidateToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString, expectedUsername string) bool {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString, expectedUsername)
	}

	return m.Valid
}

// Ensure MockJWTService satisfies the auth.JWTService interface
var _ auth.JWTService = (*MockJWTService)(nil)
