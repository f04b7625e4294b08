package store

import (
	"context"

	"github.com/abdelmajidelayachi/task-manager/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The store assigns the ID.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user by their unique username.
	// Returns ErrUserNotFound if the user does not exist. This is a hard
	// contract: the authentication layer maps it to an authentication
	// failure.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
