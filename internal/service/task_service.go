package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abdelmajidelayachi/task-manager/internal/domain"
	"github.com/abdelmajidelayachi/task-manager/internal/platform/logger"
	"github.com/abdelmajidelayachi/task-manager/internal/store"
)

// TaskService orchestrates the task operations: validation, store calls,
// and the status transition rules. All mutations are single-row
// read-modify-write sequences; the store's own transactional guarantees
// are relied on for concurrent writers.
type TaskService struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService with the given dependencies.
// If logger is nil, the default logger is used.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskService{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}
}

// List returns all tasks ordered most-recently-created first.
func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.taskStore.List(ctx)
}

// Create validates and persists a new task. The store assigns the ID and
// timestamps, which are visible on the returned task.
func (s *TaskService) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// GetByID returns the task with the given ID.
// Returns store.ErrTaskNotFound if no such task exists.
func (s *TaskService) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	return s.taskStore.GetByID(ctx, id)
}

// Update overwrites all four mutable fields of an existing task with the
// given values and re-saves it (full replace, not partial patch).
// Returns store.ErrTaskNotFound if no such task exists.
func (s *TaskService) Update(ctx context.Context, id int64, updated *domain.Task) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Title = updated.Title
	task.Description = updated.Description
	task.Status = updated.Status
	task.Priority = updated.Priority

	if err := s.taskStore.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}

	return task, nil
}

// UpdateStatus parses statusText against the closed status set and, when
// it matches, overwrites only the task's status and re-saves.
// Returns ErrStatusNotFound when the text matches no status, and
// store.ErrTaskNotFound when the task does not exist.
func (s *TaskService) UpdateStatus(ctx context.Context, id int64, statusText string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	status, err := domain.ParseTaskStatus(statusText)
	if err != nil {
		log.Debug("unrecognized status text",
			slog.Int64("task_id", id),
			slog.String("status_text", statusText))
		return nil, fmt.Errorf("%w: %q", ErrStatusNotFound, statusText)
	}

	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Status = status

	if err := s.taskStore.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update status of task %d: %w", id, err)
	}

	return task, nil
}

// Delete permanently removes the task with the given ID.
// Returns store.ErrTaskNotFound if no such task exists.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.taskStore.Delete(ctx, id)
}
