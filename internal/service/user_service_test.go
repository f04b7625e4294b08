package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdelmajidelayachi/task-manager/internal/domain"
	"github.com/abdelmajidelayachi/task-manager/internal/mocks"
	"github.com/abdelmajidelayachi/task-manager/internal/service/auth"
	"github.com/abdelmajidelayachi/task-manager/internal/store"
)

func newTestUserService() (*UserService, *mocks.MockUserStore) {
	userStore := mocks.NewMockUserStore()
	return NewUserService(userStore, auth.NewBcryptHasher(), nil), userStore
}

func TestUserServiceRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, userStore := newTestUserService()

	require.NoError(t, svc.Register(ctx, "Alice Smith", "alice", "secret123"))

	user, err := svc.GetByUsername(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, "Alice Smith", user.Name)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, domain.DefaultAuthority, user.Authorities)
	assert.True(t, user.Enabled)
	assert.NotZero(t, user.ID)

	// The stored password is a bcrypt hash, verifiable with the original.
	assert.NotEqual(t, "secret123", user.HashedPassword)
	hasher := auth.NewBcryptHasher()
	assert.NoError(t, hasher.Compare(user.HashedPassword, "secret123"))

	assert.Len(t, userStore.Users, 1)
}

func TestUserServiceRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := newTestUserService()

	require.NoError(t, svc.Register(ctx, "Alice Smith", "alice", "secret123"))

	err := svc.Register(ctx, "Another Alice", "alice", "different456")
	assert.ErrorIs(t, err, store.ErrUsernameExists)
}

func TestUserServiceGetByUsernameNotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newTestUserService()

	_, err := svc.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
