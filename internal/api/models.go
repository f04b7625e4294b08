package api

import "github.com/abdelmajidelayachi/task-manager/internal/api/shared"

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
}

// TaskRequest defines the payload for creating and replacing tasks.
// The id and timestamps are never accepted from client input.
type TaskRequest struct {
	Title       string `json:"title"       validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Status      string `json:"status"      validate:"required,oneof=PENDING IN_PROGRESS COMPLETED"`
	Priority    string `json:"priority"    validate:"required,oneof=LOW MEDIUM HIGH"`
}

// TaskResponse defines the task representation returned to clients,
// including the derived display names for both enums.
type TaskResponse struct {
	ID                  int64            `json:"id"`
	Title               string           `json:"title"`
	Description         string           `json:"description"`
	Status              string           `json:"status"`
	StatusDisplayName   string           `json:"statusDisplayName"`
	Priority            string           `json:"priority"`
	PriorityDisplayName string           `json:"priorityDisplayName"`
	CreatedAt           shared.Timestamp `json:"createdAt"`
	UpdatedAt           shared.Timestamp `json:"updatedAt"`
}
