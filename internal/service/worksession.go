package service

import (
	"errors"
	"time"

	"github.com/bazaan/dashboarddev/internal/domain"
	"github.com/bazaan/dashboarddev/internal/metrics"
	"github.com/bazaan/dashboarddev/pkg/logger"
)

const (
	sessionListLimit   = 30
	sessionExportLimit = 500
)

type sessionRepository interface {
	ActiveSession(userID string) (*domain.WorkSession, error)
	CreateSession(userID string) (*domain.WorkSession, error)
	UpdateSession(session domain.WorkSession) error
	Sessions(userID string, limit int) ([]domain.WorkSession, error)
}

type WorkSessionService struct {
	repo sessionRepository
	now  func() time.Time
}

func NewWorkSessionService(repo sessionRepository) *WorkSessionService {
	return &WorkSessionService{
		repo: repo,
		now:  time.Now,
	}
}

// Start opens a session for the user, or returns the open one unchanged. A
// concurrent start losing the unique-index race reuses the winner's session.
func (s *WorkSessionService) Start(userID string) (*domain.WorkSession, error) {
	session, err := s.repo.ActiveSession(userID)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, domain.ErrNoActiveSession) {
		return nil, err
	}

	created, err := s.repo.CreateSession(userID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExists) {
			logger.Log.Warn("lost session start race", logger.String("user_id", userID))
			return s.repo.ActiveSession(userID)
		}
		return nil, err
	}

	metrics.SessionTransitions.WithLabelValues("start").Inc()

	return created, nil
}

// BreakStart moves the open session onto a break. While already on a break it
// only reconfirms the state; the running break window is never overwritten.
func (s *WorkSessionService) BreakStart(userID string) (*domain.WorkSession, error) {
	session, err := s.repo.ActiveSession(userID)
	if err != nil {
		return nil, err
	}

	if session.Status == domain.SessionBreak {
		return session, nil
	}

	now := s.now()
	session.Status = domain.SessionBreak
	session.BreakStart = &now
	session.BreakEnd = nil

	if err := s.repo.UpdateSession(*session); err != nil {
		return nil, err
	}

	metrics.SessionTransitions.WithLabelValues("break_start").Inc()

	return session, nil
}

// BreakEnd closes the running break window and folds its duration into the
// session's accumulated break time.
func (s *WorkSessionService) BreakEnd(userID string) (*domain.WorkSession, error) {
	session, err := s.repo.ActiveSession(userID)
	if err != nil {
		return nil, err
	}

	if session.OnBreak() {
		s.closeBreak(session)
	}
	session.Status = domain.SessionActive

	if err := s.repo.UpdateSession(*session); err != nil {
		return nil, err
	}

	metrics.SessionTransitions.WithLabelValues("break_end").Inc()

	return session, nil
}

// End terminates the open session. Ending mid-break closes the break window
// first so it still counts against elapsed time.
func (s *WorkSessionService) End(userID string) (*domain.WorkSession, error) {
	session, err := s.repo.ActiveSession(userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if session.OnBreak() {
		s.closeBreak(session)
	}
	session.Status = domain.SessionEnded
	session.EndedAt = &now

	if err := s.repo.UpdateSession(*session); err != nil {
		return nil, err
	}

	metrics.SessionTransitions.WithLabelValues("end").Inc()

	return session, nil
}

// Sessions lists recent sessions, team-wide for admins and own otherwise.
func (s *WorkSessionService) Sessions(callerID, callerRole string) ([]domain.WorkSession, error) {
	return s.list(callerID, callerRole, sessionListLimit)
}

// SessionsForExport is Sessions with the larger export window.
func (s *WorkSessionService) SessionsForExport(callerID, callerRole string) ([]domain.WorkSession, error) {
	return s.list(callerID, callerRole, sessionExportLimit)
}

func (s *WorkSessionService) list(callerID, callerRole string, limit int) ([]domain.WorkSession, error) {
	scope := callerID
	if callerRole == domain.RoleAdmin {
		scope = ""
	}

	return s.repo.Sessions(scope, limit)
}

func (s *WorkSessionService) closeBreak(session *domain.WorkSession) {
	now := s.now()
	folded := int64(now.Sub(*session.BreakStart).Seconds())
	if folded > 0 {
		session.BreakSeconds += folded
	}
	session.BreakEnd = &now
}
