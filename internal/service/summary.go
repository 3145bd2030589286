package service

import (
	"time"

	"github.com/bazaan/dashboarddev/internal/domain"
)

const (
	summaryEventLimit        = 3
	summaryNotificationLimit = 3
)

type summaryRepository interface {
	TaskCounts(assigneeID string, weekStart, weekEnd time.Time) (*domain.Summary, error)
	UserByID(id string) (*domain.User, error)
	UpcomingEvents(now time.Time, limit int) ([]domain.Event, error)
	Notifications(userID string, limit int) ([]domain.Notification, error)
}

// Overview is the dashboard landing payload.
type Overview struct {
	Summary       domain.Summary
	Briefings     []domain.Event
	Notifications []domain.Notification
}

type SummaryService struct {
	repo summaryRepository
	now  func() time.Time
}

func NewSummaryService(repo summaryRepository) *SummaryService {
	return &SummaryService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *SummaryService) Overview(callerID, callerRole string) (*Overview, error) {
	now := s.now()
	weekStart, weekEnd := weekBounds(now)

	scope := callerID
	if callerRole == domain.RoleAdmin {
		scope = ""
	}

	summary, err := s.repo.TaskCounts(scope, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.UserByID(callerID)
	if err != nil {
		return nil, err
	}
	summary.StarsBalance = user.StarsBalance
	summary.BonusesBalance = user.BonusesBalance

	briefings, err := s.repo.UpcomingEvents(now, summaryEventLimit)
	if err != nil {
		return nil, err
	}

	notifications, err := s.repo.Notifications(callerID, summaryNotificationLimit)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Summary:       *summary,
		Briefings:     briefings,
		Notifications: notifications,
	}, nil
}

// weekBounds returns the Sunday-to-Saturday window containing t.
func weekBounds(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location()).
		AddDate(0, 0, -int(t.Weekday()))

	return start, start.AddDate(0, 0, 7)
}
