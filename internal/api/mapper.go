package api

import (
	"github.com/abdelmajidelayachi/task-manager/internal/api/shared"
	"github.com/abdelmajidelayachi/task-manager/internal/domain"
)

// taskToResponse converts a task entity into its response shape,
// deriving the display names from the domain's label tables. The
// derivation is nil-safe: an unknown enum value yields an empty display
// name instead of failing the whole response.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:                  task.ID,
		Title:               task.Title,
		Description:         task.Description,
		Status:              string(task.Status),
		StatusDisplayName:   task.Status.DisplayName(),
		Priority:            string(task.Priority),
		PriorityDisplayName: task.Priority.DisplayName(),
		CreatedAt:           shared.Timestamp(task.CreatedAt),
		UpdatedAt:           shared.Timestamp(task.UpdatedAt),
	}
}

// tasksToResponse converts a slice of task entities.
func tasksToResponse(tasks []domain.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, taskToResponse(&tasks[i]))
	}
	return responses
}

// taskFromRequest converts a validated request into an entity, copying
// only the four mutable fields. Enum texts have already passed the
// oneof validation, so the conversions cannot produce invalid members.
func taskFromRequest(req TaskRequest) *domain.Task {
	return &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
	}
}
