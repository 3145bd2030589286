package service

import (
	"time"

	"github.com/bazaan/dashboarddev/internal/domain"
)

type eventRepository interface {
	CreateEvent(event domain.Event) (*domain.Event, error)
	Event(id string) (*domain.Event, error)
	Events(eventType, projectID string, from, to time.Time) ([]domain.Event, error)
	UpdateEvent(event domain.Event) (*domain.Event, error)
	DeleteEvent(id string) error
}

type EventService struct {
	repo eventRepository
}

func NewEventService(repo eventRepository) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) Create(event domain.Event) (*domain.Event, error) {
	if event.Type == "" {
		event.Type = domain.EventTypeOther
	}

	return s.repo.CreateEvent(event)
}

func (s *EventService) Events(eventType, projectID string, from, to time.Time) ([]domain.Event, error) {
	return s.repo.Events(eventType, projectID, from, to)
}

func (s *EventService) Event(id string) (*domain.Event, error) {
	return s.repo.Event(id)
}

func (s *EventService) Update(event domain.Event) (*domain.Event, error) {
	return s.repo.UpdateEvent(event)
}

func (s *EventService) Delete(id string) error {
	return s.repo.DeleteEvent(id)
}
