package auth

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdelmajidelayachi/task-manager/internal/config"
)

// testAuthConfig returns a valid auth configuration for tests. The secret
// is base64 as required by the production configuration.
func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            base64.StdEncoding.EncodeToString([]byte("test-jwt-secret-that-is-32-chars")),
		TokenLifetimeMinutes: 30,
	}
}

// newTestService creates an HMAC service with an injectable clock.
func newTestService(t *testing.T, timeFunc func() time.Time) *hmacJWTService {
	t.Helper()
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	hmacSvc, ok := svc.(*hmacJWTService)
	require.True(t, ok)
	if timeFunc != nil {
		hmacSvc.timeFunc = timeFunc
	}
	return hmacSvc
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("accepts base64 secret", func(t *testing.T) {
		t.Parallel()
		svc, err := NewJWTService(testAuthConfig())
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("rejects non-base64 secret", func(t *testing.T) {
		t.Parallel()
		cfg := testAuthConfig()
		cfg.JWTSecret = "not!!!base64"
		_, err := NewJWTService(cfg)
		assert.Error(t, err)
	})

	t.Run("rejects empty secret", func(t *testing.T) {
		t.Parallel()
		cfg := testAuthConfig()
		cfg.JWTSecret = ""
		_, err := NewJWTService(cfg)
		assert.Error(t, err)
	})
}

func TestGenerateAndExtract(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(t, nil)

	token, err := svc.GenerateToken(ctx, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := svc.ExtractUsername(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(t, nil)

	token, err := svc.GenerateToken(ctx, "alice")
	require.NoError(t, err)

	assert.True(t, svc.ValidateToken(ctx, token, "alice"))
	assert.False(t, svc.ValidateToken(ctx, token, "bob"))
	assert.False(t, svc.ValidateToken(ctx, "not-a-token", "alice"))
}

func TestExpiredToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	// Issue the token at a fixed instant.
	svc := newTestService(t, func() time.Time { return issuedAt })
	token, err := svc.GenerateToken(ctx, "alice")
	require.NoError(t, err)

	// Still valid one minute before expiry.
	svc.timeFunc = func() time.Time { return issuedAt.Add(29 * time.Minute) }
	_, err = svc.ExtractUsername(ctx, token)
	require.NoError(t, err)

	// Expired one minute after the lifetime elapses.
	svc.timeFunc = func() time.Time { return issuedAt.Add(31 * time.Minute) }
	_, err = svc.ExtractUsername(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.False(t, svc.ValidateToken(ctx, token, "alice"))
}

func TestTamperedToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(t, nil)

	token, err := svc.GenerateToken(ctx, "alice")
	require.NoError(t, err)

	// Flip the last signature byte.
	tampered := token[:len(token)-1] + string(token[len(token)-1]^1)

	_, err = svc.ExtractUsername(ctx, tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.False(t, svc.ValidateToken(ctx, tampered, "alice"))
}

func TestTokenFromDifferentKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(t, nil)

	otherCfg := config.AuthConfig{
		JWTSecret:            base64.StdEncoding.EncodeToString([]byte("another-jwt-secret-32-chars-long")),
		TokenLifetimeMinutes: 30,
	}
	otherSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := otherSvc.GenerateToken(ctx, "alice")
	require.NoError(t, err)

	_, err = svc.ExtractUsername(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
