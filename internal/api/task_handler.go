package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/abdelmajidelayachi/task-manager/internal/api/shared"
	"github.com/abdelmajidelayachi/task-manager/internal/service"
)

// TaskHandler handles the task CRUD endpoints.
type TaskHandler struct {
	taskService *service.TaskService
	validator   *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validator:   newValidator(),
	}
}

// Create handles POST /api/v1/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.Create(r.Context(), taskFromRequest(req))
	if err != nil {
		respondTaskError(w, r, err, "Failed to create task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// List handles GET /api/v1/tasks, returning tasks ordered by the last
// created task.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.List(r.Context())
	if err != nil {
		respondTaskError(w, r, err, "Failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetByID handles GET /api/v1/tasks/{id}.
func (h *TaskHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetByID(r.Context(), id)
	if err != nil {
		respondTaskError(w, r, err, fmt.Sprintf(noTaskFoundFmt, id))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// Update handles PUT /api/v1/tasks/{id}: a full replace of the four
// mutable fields, not a partial patch.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.Update(r.Context(), id, taskFromRequest(req))
	if err != nil {
		respondTaskError(w, r, err, fmt.Sprintf(noTaskFoundFmt, id))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateStatus handles PATCH /api/v1/tasks/{id}/status?status=X.
// An unrecognized status text reports not-found, matching the
// long-standing external contract of this endpoint.
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	statusText := r.URL.Query().Get("status")

	task, err := h.taskService.UpdateStatus(r.Context(), id, statusText)
	if err != nil {
		respondTaskError(w, r, err,
			fmt.Sprintf("No task found by id of [%d] or status [%s] is not recognized", id, statusText))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// Delete handles DELETE /api/v1/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		respondTaskError(w, r, err, fmt.Sprintf(noTaskFoundFmt, id))
		return
	}

	w.WriteHeader(http.StatusOK)
}

const noTaskFoundFmt = "No task found by id of [%d]"

// decodeTaskRequest reads and validates the task payload, writing the
// 400 envelope itself on failure.
func (h *TaskHandler) decodeTaskRequest(w http.ResponseWriter, r *http.Request) (TaskRequest, bool) {
	var req TaskRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, errTitleBadRequest,
			"Invalid JSON format or invalid field values")
		return req, false
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return req, false
	}

	return req, true
}

// pathID parses the {id} path parameter, writing the 400 envelope on a
// non-numeric value.
func (h *TaskHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Bad Request",
			fmt.Sprintf("Invalid value '%s' for parameter 'id'. Expected type: int64", raw))
		return 0, false
	}
	return id, true
}
