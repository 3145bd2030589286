package taskhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bazaan/dashboarddev/internal/domain"
	"github.com/bazaan/dashboarddev/pkg/dto"
	"github.com/bazaan/dashboarddev/pkg/logger"
)

type TaskService interface {
	Create(actorID, actorRole string, task domain.Task) (*domain.Task, error)
	Tasks(callerID, callerRole string) ([]domain.Task, error)
	Update(actorID, actorRole, taskID string, patch domain.TaskPatch) (*domain.Task, error)
	Delete(actorID, actorRole, taskID string) error
	Reorder(actorRole string, taskIDs []string) error
}

type TaskHandler struct {
	srv TaskService
}

func New(srv TaskService) *TaskHandler {
	return &TaskHandler{
		srv: srv,
	}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID := r.Header.Get("User-ID")
	role := r.Header.Get("User-Role")

	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("error while decoding a create task request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := req.IsValid(); err != nil {
		logger.Log.Warn("invalid task fields", logger.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	task := domain.Task{
		Title:            req.Title,
		Description:      req.Description,
		Priority:         req.Priority,
		Status:           req.Status,
		AssigneeID:       req.AssigneeID,
		ProjectID:        req.ProjectID,
		Recurrence:       req.Recurrence,
		OrderIndex:       req.OrderIndex,
		TimeEstimateMins: req.TimeEstimateMins,
	}
	if req.Deadline != nil && *req.Deadline != "" {
		deadline, err := dto.ParseDeadline(*req.Deadline)
		if err != nil {
			http.Error(w, "invalid deadline", http.StatusBadRequest)
			return
		}
		task.Deadline = &deadline
	}

	created, err := h.srv.Create(actorID, role, task)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		logger.Log.Error("error while creating task", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeTask(w, http.StatusCreated, *created)
}

func (h *TaskHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("User-ID")
	role := r.Header.Get("User-Role")

	tasks, err := h.srv.Tasks(userID, role)
	if err != nil {
		logger.Log.Error("error while fetching tasks", logger.String("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	dtos := make([]dto.Task, len(tasks))
	for i, task := range tasks {
		dtos[i] = toDTO(task)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(dtos); err != nil {
		logger.Log.Error("error while encoding tasks to JSON", logger.Error(err))
	}
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID := r.Header.Get("User-ID")
	role := r.Header.Get("User-Role")
	taskID := chi.URLParam(r, "id")

	var req dto.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("error while decoding an update task request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	patch := domain.TaskPatch{
		Title:            req.Title,
		Description:      req.Description,
		Priority:         req.Priority,
		Status:           req.Status,
		AssigneeID:       req.AssigneeID,
		ProjectID:        req.ProjectID,
		Recurrence:       req.Recurrence,
		OrderIndex:       req.OrderIndex,
		TimeEstimateMins: req.TimeEstimateMins,
		StarsAwarded:     req.StarsAwarded,
	}
	if req.Deadline != nil && *req.Deadline != "" {
		deadline, err := dto.ParseDeadline(*req.Deadline)
		if err != nil {
			http.Error(w, "invalid deadline", http.StatusBadRequest)
			return
		}
		patch.Deadline = &deadline
	}

	updated, err := h.srv.Update(actorID, role, taskID, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			http.Error(w, "task not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrForbidden):
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		case errors.Is(err, domain.ErrStarsAlreadyAwarded):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, domain.ErrTaskHasNoAssignee),
			errors.Is(err, domain.ErrInvalidStarCount):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			logger.Log.Error("error while updating task", logger.String("task_id", taskID), logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	writeTask(w, http.StatusOK, *updated)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID := r.Header.Get("User-ID")
	role := r.Header.Get("User-Role")
	taskID := chi.URLParam(r, "id")

	err := h.srv.Delete(actorID, role, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		logger.Log.Error("error while deleting task", logger.String("task_id", taskID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *TaskHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	role := r.Header.Get("User-Role")

	var req dto.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("error while decoding a reorder request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.srv.Reorder(role, req.IDs); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		logger.Log.Error("error while reordering tasks", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func writeTask(w http.ResponseWriter, status int, task domain.Task) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(toDTO(task)); err != nil {
		logger.Log.Error("error while encoding task to JSON", logger.Error(err))
	}
}

func toDTO(task domain.Task) dto.Task {
	return dto.Task{
		ID:               task.ID,
		Title:            task.Title,
		Description:      task.Description,
		Priority:         task.Priority,
		Status:           task.Status,
		Deadline:         formatOptional(task.Deadline),
		AssigneeID:       task.AssigneeID,
		ProjectID:        task.ProjectID,
		Recurrence:       task.Recurrence,
		OrderIndex:       task.OrderIndex,
		TimeEstimateMins: task.TimeEstimateMins,
		StarsAwarded:     task.StarsAwarded,
		CompletedAt:      formatOptional(task.CompletedAt),
		CreatedAt:        task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        task.UpdatedAt.Format(time.RFC3339),
	}
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := t.Format(time.RFC3339)

	return &formatted
}
