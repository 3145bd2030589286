package notehandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bazaan/dashboarddev/internal/domain"
	"github.com/bazaan/dashboarddev/pkg/dto"
	"github.com/bazaan/dashboarddev/pkg/logger"
)

type NoteService interface {
	Create(note domain.Note) (*domain.Note, error)
	Notes(authorID string) ([]domain.Note, error)
}

type NoteHandler struct {
	srv NoteService
}

func New(srv NoteService) *NoteHandler {
	return &NoteHandler{
		srv: srv,
	}
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	authorID := r.Header.Get("User-ID")

	var req dto.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("error while decoding a note request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := req.IsValid(); err != nil {
		logger.Log.Warn("invalid note fields", logger.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.srv.Create(domain.Note{
		Title:     req.Title,
		Content:   req.Content,
		Scope:     req.Scope,
		ProjectID: req.ProjectID,
		AuthorID:  authorID,
	})
	if err != nil {
		logger.Log.Error("error while creating note", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(toDTO(*created)); err != nil {
		logger.Log.Error("error while encoding note to JSON", logger.Error(err))
	}
}

func (h *NoteHandler) Notes(w http.ResponseWriter, r *http.Request) {
	authorID := r.Header.Get("User-ID")

	notes, err := h.srv.Notes(authorID)
	if err != nil {
		logger.Log.Error("error while fetching notes", logger.String("user_id", authorID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	dtos := make([]dto.Note, len(notes))
	for i, note := range notes {
		dtos[i] = toDTO(note)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(dtos); err != nil {
		logger.Log.Error("error while encoding notes to JSON", logger.Error(err))
	}
}

func toDTO(note domain.Note) dto.Note {
	return dto.Note{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Scope:     note.Scope,
		ProjectID: note.ProjectID,
		AuthorID:  note.AuthorID,
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
		UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
	}
}
