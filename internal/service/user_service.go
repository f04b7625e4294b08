package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abdelmajidelayachi/task-manager/internal/domain"
	"github.com/abdelmajidelayachi/task-manager/internal/platform/logger"
	"github.com/abdelmajidelayachi/task-manager/internal/service/auth"
	"github.com/abdelmajidelayachi/task-manager/internal/store"
)

// UserService is the user directory: it registers new users and loads
// existing ones by username for the authentication layer.
type UserService struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

// NewUserService creates a new UserService with the given dependencies.
// If logger is nil, the default logger is used.
func NewUserService(userStore store.UserStore, hasher auth.PasswordHasher, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}

	return &UserService{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// Register hashes the raw password with bcrypt and persists a new user
// with the default authority and enabled flag set.
// Returns store.ErrUsernameExists if the username is already taken.
func (s *UserService) Register(ctx context.Context, name, username, rawPassword string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	hashed, err := s.hasher.Hash(rawPassword)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(name, username, hashed)
	if err != nil {
		return err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return err
	}

	log.Info("user registered", slog.String("username", username))
	return nil
}

// GetByUsername loads a user record by username.
// Returns store.ErrUserNotFound if the user does not exist; callers in
// the authentication path MUST treat that as an authentication failure,
// not a generic error.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userStore.GetByUsername(ctx, username)
}
