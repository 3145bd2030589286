package eventhandler

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

type EventService interface {
	Create(event domain.Event) (*domain.Event, error)
	Events(eventType, projectID string, from, to time.Time) ([]domain.Event, error)
	Update(event domain.Event) (*domain.Event, error)
	Delete(id string) error
}

type EventHandler struct {
	srv EventService
}

func New(srv EventService) *EventHandler {
	return &EventHandler{
		srv: srv,
	}
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID := r.Header.Get("User-ID")

	event, ok := decodeEvent(w, r)
	if !ok {
		return
	}
	event.OwnerID = ownerID

	created, err := h.srv.Create(event)
	if err != nil {
		logger.Log.Error("error while creating event", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeEvent(w, http.StatusCreated, *created)
}

func (h *EventHandler) Events(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var from, to time.Time
	if start, end := query.Get("startDate"), query.Get("endDate"); start != "" && end != "" {
		var err error
		from, err = dto.ParseDeadline(start)
		if err != nil {
			http.Error(w, "invalid startDate", http.StatusBadRequest)
			return
		}
		to, err = dto.ParseDeadline(end)
		if err != nil {
			http.Error(w, "invalid endDate", http.StatusBadRequest)
			return
		}
	}

	events, err := h.srv.Events(query.Get("type"), query.Get("projectId"), from, to)
	if err != nil {
		logger.Log.Error("error while fetching events", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	dtos := make([]dto.Event, len(events))
	for i, event := range events {
		dtos[i] = toDTO(event)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(dtos); err != nil {
		logger.Log.Error("error while encoding events to JSON", logger.Error(err))
	}
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")

	event, ok := decodeEvent(w, r)
	if !ok {
		return
	}
	event.ID = eventID

	updated, err := h.srv.Update(event)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}
		logger.Log.Error("error while updating event", logger.String("event_id", eventID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeEvent(w, http.StatusOK, *updated)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")

	err := h.srv.Delete(eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}
		logger.Log.Error("error while deleting event", logger.String("event_id", eventID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func decodeEvent(w http.ResponseWriter, r *http.Request) (domain.Event, bool) {
	var req dto.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("error while decoding an event request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return domain.Event{}, false
	}

	if err := req.IsValid(); err != nil {
		logger.Log.Warn("invalid event fields", logger.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return domain.Event{}, false
	}

	startDate, err := dto.ParseDeadline(req.StartDate)
	if err != nil {
		http.Error(w, "invalid startDate", http.StatusBadRequest)
		return domain.Event{}, false
	}
	endDate, err := dto.ParseDeadline(req.EndDate)
	if err != nil {
		http.Error(w, "invalid endDate", http.StatusBadRequest)
		return domain.Event{}, false
	}

	return domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		StartDate:   startDate,
		EndDate:     endDate,
		Progress:    req.Progress,
		ProjectID:   req.ProjectID,
	}, true
}

func writeEvent(w http.ResponseWriter, status int, event domain.Event) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(toDTO(event)); err != nil {
		logger.Log.Error("error while encoding event to JSON", logger.Error(err))
	}
}

func toDTO(event domain.Event) dto.Event {
	return dto.Event{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Type:        event.Type,
		StartDate:   event.StartDate.Format(time.RFC3339),
		EndDate:     event.EndDate.Format(time.RFC3339),
		Progress:    event.Progress,
		ProjectID:   event.ProjectID,
		CreatedAt:   event.CreatedAt.Format(time.RFC3339),
	}
}
