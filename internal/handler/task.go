package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/handler/dto"
	"github.com/taskdeck/taskdeck/internal/service"
)

// TaskHandler handles task CRUD requests. All routes sit behind the
// auth middleware, so the caller identity is always on the context.
type TaskHandler struct {
	service *service.TaskService
	logger  *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(svc *service.TaskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		service: svc,
		logger:  logger,
	}
}

// Create adds a new task for the caller.
// POST /tasks/create
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", codeBadRequest)
		return
	}

	task, err := h.service.Create(r.Context(), identity.UserID, req.Title)
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error(), codeValidation)
			return
		}
		writeInternalError(w, h.logger, "create task", err)
		return
	}

	h.logger.Info("task created",
		slog.String("task_id", task.ID),
		slog.String("user_id", identity.UserID),
	)

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// List returns all of the caller's tasks, most recent first.
// GET /tasks
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	tasks, err := h.service.List(r.Context(), identity.UserID)
	if err != nil {
		writeInternalError(w, h.logger, "list tasks", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// Update renames the caller's task.
// PUT /tasks/{id}
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())
	taskID := chi.URLParam(r, "id")

	var req dto.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", codeBadRequest)
		return
	}

	task, err := h.service.UpdateTitle(r.Context(), identity.UserID, taskID, req.Title)
	if err != nil {
		switch {
		case isValidationError(err):
			writeError(w, http.StatusBadRequest, err.Error(), codeValidation)
		case errors.Is(err, service.ErrTaskNotFound):
			writeError(w, http.StatusNotFound, err.Error(), codeTaskNotFound)
		default:
			writeInternalError(w, h.logger, "update task", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// Delete removes the caller's task.
// DELETE /tasks/{id}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())
	taskID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), identity.UserID, taskID); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			writeError(w, http.StatusNotFound, err.Error(), codeTaskNotFound)
			return
		}
		writeInternalError(w, h.logger, "delete task", err)
		return
	}

	h.logger.Info("task deleted",
		slog.String("task_id", taskID),
		slog.String("user_id", identity.UserID),
	)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "task deleted"})
}

// Toggle flips the completion flag on the caller's task.
// PATCH /tasks/{id}/toggle
func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())
	taskID := chi.URLParam(r, "id")

	task, err := h.service.Toggle(r.Context(), identity.UserID, taskID)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			writeError(w, http.StatusNotFound, err.Error(), codeTaskNotFound)
			return
		}
		writeInternalError(w, h.logger, "toggle task", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}
