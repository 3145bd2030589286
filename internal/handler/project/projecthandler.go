package projecthandler

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

type ProjectService interface {
	Create(actorID, actorRole string, project domain.Project) (*domain.Project, error)
	Projects() ([]domain.Project, error)
	Update(actorID, actorRole string, project domain.Project) (*domain.Project, error)
	Delete(actorID, actorRole, id string) error
	Reorder(actorRole string, projectIDs []string) error
}

type ProjectHandler struct {
	srv ProjectService
}

func New(srv ProjectService) *ProjectHandler {
	return &ProjectHandler{
		srv: srv,
	}
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID := r.Header.Get("User-ID")
	role := r.Header.Get("User-Role")

	req, ok := decodeProject(w, r)
	if !ok {
		return
	}

	created, err := h.srv.Create(actorID, role, domain.Project{
		Name:        req.Name,
		Description: req.Description,
		Brief:       req.Brief,
		Priority:    req.Priority,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		logger.Log.Error("error while creating project", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeProject(w, http.StatusCreated, *created)
}

func (h *ProjectHandler) Projects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.srv.Projects()
	if err != nil {
		logger.Log.Error("error while fetching projects", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	dtos := make([]dto.Project, len(projects))
	for i, project := range projects {
		dtos[i] = toDTO(project)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(dtos); err != nil {
		logger.Log.Error("error while encoding projects to JSON", logger.Error(err))
	}
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID := r.Header.Get("User-ID")
	role := r.Header.Get("User-Role")
	projectID := chi.URLParam(r, "id")

	req, ok := decodeProject(w, r)
	if !ok {
		return
	}

	updated, err := h.srv.Update(actorID, role, domain.Project{
		ID:          projectID,
		Name:        req.Name,
		Description: req.Description,
		Brief:       req.Brief,
		Priority:    req.Priority,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		logger.Log.Error("error while updating project", logger.String("project_id", projectID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeProject(w, http.StatusOK, *updated)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID := r.Header.Get("User-ID")
	role := r.Header.Get("User-Role")
	projectID := chi.URLParam(r, "id")

	err := h.srv.Delete(actorID, role, projectID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		logger.Log.Error("error while deleting project", logger.String("project_id", projectID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *ProjectHandler) Reorder(w http.ResponseWriter, r *http.Request) {
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
		logger.Log.Error("error while reordering projects", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func decodeProject(w http.ResponseWriter, r *http.Request) (dto.ProjectRequest, bool) {
	var req dto.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("error while decoding a project request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return req, false
	}

	if err := req.IsValid(); err != nil {
		logger.Log.Warn("invalid project fields", logger.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return req, false
	}

	return req, true
}

func writeProject(w http.ResponseWriter, status int, project domain.Project) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(toDTO(project)); err != nil {
		logger.Log.Error("error while encoding project to JSON", logger.Error(err))
	}
}

func toDTO(project domain.Project) dto.Project {
	return dto.Project{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Brief:       project.Brief,
		Priority:    project.Priority,
		OrderIndex:  project.OrderIndex,
		CreatedAt:   project.CreatedAt.Format(time.RFC3339),
	}
}
