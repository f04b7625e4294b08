package store

import (
	"context"

	"github.com/abdelmajidelayachi/task-manager/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store. The store assigns the ID and
	// both timestamps; the passed task is updated in place with the
	// assigned values.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// List retrieves all tasks ordered most-recently-created first.
	List(ctx context.Context) ([]domain.Task, error)

	// Update overwrites the mutable fields of an existing task and
	// refreshes its UpdatedAt timestamp. The passed task is updated in
	// place with the new timestamp.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	// This operation is permanent and cannot be undone.
	Delete(ctx context.Context, id int64) error
}
