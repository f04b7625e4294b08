package domain

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// Common task validation errors
var (
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrTitleTooLong       = errors.New("title must be at most 255 characters long")
	ErrDescriptionTooLong = errors.New("description must be at most 1000 characters long")
	ErrInvalidStatus      = errors.New("invalid task status")
	ErrInvalidPriority    = errors.New("invalid task priority")
)

// TaskStatus is the closed set of lifecycle states a task can be in.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// statusDisplayNames is the single lookup table for human-readable
// status labels. Responses derive their display names from here and
// nowhere else.
var statusDisplayNames = map[TaskStatus]string{
	TaskStatusPending:    "Pending",
	TaskStatusInProgress: "In Progress",
	TaskStatusCompleted:  "Completed",
}

// DisplayName returns the fixed human-readable label for the status.
// Unknown values yield an empty string rather than panicking so that
// mapping stays total even on bad data.
func (s TaskStatus) DisplayName() string {
	return statusDisplayNames[s]
}

// Valid reports whether the status is a member of the closed enum set.
func (s TaskStatus) Valid() bool {
	_, ok := statusDisplayNames[s]
	return ok
}

// ParseTaskStatus converts the wire representation of a status into a
// TaskStatus, or returns ErrInvalidStatus for anything outside the set.
func ParseTaskStatus(text string) (TaskStatus, error) {
	s := TaskStatus(text)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, text)
	}
	return s, nil
}

// TaskPriority is the closed set of priority levels a task can carry.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

var priorityDisplayNames = map[TaskPriority]string{
	TaskPriorityLow:    "Low",
	TaskPriorityMedium: "Medium",
	TaskPriorityHigh:   "High",
}

// DisplayName returns the fixed human-readable label for the priority.
func (p TaskPriority) DisplayName() string {
	return priorityDisplayNames[p]
}

// Valid reports whether the priority is a member of the closed enum set.
func (p TaskPriority) Valid() bool {
	_, ok := priorityDisplayNames[p]
	return ok
}

// ParseTaskPriority converts the wire representation of a priority into
// a TaskPriority, or returns ErrInvalidPriority for anything outside the set.
func ParseTaskPriority(text string) (TaskPriority, error) {
	p := TaskPriority(text)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, text)
	}
	return p, nil
}

// Task represents a tracked unit of work.
// IDs are assigned by the store; CreatedAt is set on first persist and
// immutable afterwards, UpdatedAt is refreshed on every persist.
type Task struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewTask creates an unpersisted Task with the given fields, applying
// the enum defaults when status or priority are empty.
// Returns an error if validation fails.
func NewTask(title, description string, status TaskStatus, priority TaskPriority) (*Task, error) {
	if status == "" {
		status = TaskStatusPending
	}
	if priority == "" {
		priority = TaskPriorityMedium
	}

	task := &Task{
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
// Length limits count characters, not bytes, so multibyte titles get
// the same budget the request validator grants them.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(t.Title) > 255 {
		return ErrTitleTooLong
	}
	if utf8.RuneCountInString(t.Description) > 1000 {
		return ErrDescriptionTooLong
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	return nil
}
