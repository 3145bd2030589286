package service

import (
	"errors"
	"testing"
	"time"

	"github.com/bazaan/dashboarddev/internal/domain"
	"github.com/google/uuid"
)

type fakeSessionRepo struct {
	sessions      map[string]*domain.WorkSession
	createdAt     time.Time
	raceOnCreate  bool
	activeErr     error
	updateErr     error
	updates       int
	lastSessionID string
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*domain.WorkSession{}}
}

func (f *fakeSessionRepo) ActiveSession(userID string) (*domain.WorkSession, error) {
	if f.activeErr != nil {
		return nil, f.activeErr
	}

	session, ok := f.sessions[userID]
	if !ok || !session.Open() {
		return nil, domain.ErrNoActiveSession
	}

	copied := *session

	return &copied, nil
}

func (f *fakeSessionRepo) CreateSession(userID string) (*domain.WorkSession, error) {
	if f.raceOnCreate {
		f.raceOnCreate = false
		f.sessions[userID] = &domain.WorkSession{
			ID:        uuid.NewString(),
			UserID:    userID,
			Status:    domain.SessionActive,
			StartedAt: f.createdAt,
		}

		return nil, domain.ErrSessionExists
	}

	if session, ok := f.sessions[userID]; ok && session.Open() {
		return nil, domain.ErrSessionExists
	}

	session := &domain.WorkSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    domain.SessionActive,
		StartedAt: f.createdAt,
	}
	f.sessions[userID] = session
	f.lastSessionID = session.ID

	copied := *session

	return &copied, nil
}

func (f *fakeSessionRepo) UpdateSession(session domain.WorkSession) error {
	if f.updateErr != nil {
		return f.updateErr
	}

	f.updates++
	copied := session
	f.sessions[session.UserID] = &copied

	return nil
}

func (f *fakeSessionRepo) Sessions(userID string, limit int) ([]domain.WorkSession, error) {
	var result []domain.WorkSession
	for _, session := range f.sessions {
		if userID != "" && session.UserID != userID {
			continue
		}
		result = append(result, *session)
	}

	return result, nil
}

func sessionClock(start time.Time) (*time.Time, func() time.Time) {
	current := start

	return &current, func() time.Time { return current }
}

func TestWorkSessionService_StartIsIdempotent(t *testing.T) {
	repo := newFakeSessionRepo()
	repo.createdAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := NewWorkSessionService(repo)

	first, err := svc.Start("user-1")
	if err != nil {
		t.Fatalf("first start: %v", err)
	}

	second, err := svc.Start("user-1")
	if err != nil {
		t.Fatalf("second start: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("second start opened a new session: %s != %s", second.ID, first.ID)
	}
}

func TestWorkSessionService_StartLostRaceReusesWinner(t *testing.T) {
	repo := newFakeSessionRepo()
	repo.createdAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	repo.raceOnCreate = true
	svc := NewWorkSessionService(repo)

	session, err := svc.Start("user-1")
	if err != nil {
		t.Fatalf("start after lost race: %v", err)
	}

	winner := repo.sessions["user-1"]
	if session.ID != winner.ID {
		t.Errorf("expected the winner's session %s, got %s", winner.ID, session.ID)
	}
}

func TestWorkSessionService_BreakFoldsIntoElapsed(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := newFakeSessionRepo()
	repo.createdAt = start
	svc := NewWorkSessionService(repo)

	current, clock := sessionClock(start)
	svc.now = clock

	if _, err := svc.Start("user-1"); err != nil {
		t.Fatalf("start: %v", err)
	}

	*current = start.Add(30 * time.Minute)
	session, err := svc.BreakStart("user-1")
	if err != nil {
		t.Fatalf("break start: %v", err)
	}
	if session.Status != domain.SessionBreak {
		t.Fatalf("status = %s, want %s", session.Status, domain.SessionBreak)
	}

	*current = start.Add(40 * time.Minute)
	session, err = svc.BreakEnd("user-1")
	if err != nil {
		t.Fatalf("break end: %v", err)
	}
	if session.Status != domain.SessionActive {
		t.Fatalf("status = %s, want %s", session.Status, domain.SessionActive)
	}
	if session.BreakSeconds != 600 {
		t.Errorf("BreakSeconds = %d, want 600", session.BreakSeconds)
	}

	*current = start.Add(60 * time.Minute)
	session, err = svc.End("user-1")
	if err != nil {
		t.Fatalf("end: %v", err)
	}

	if got, want := session.Elapsed(*current), 50*time.Minute; got != want {
		t.Errorf("Elapsed() = %v, want %v", got, want)
	}
}

func TestWorkSessionService_RepeatedBreakStartKeepsWindow(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := newFakeSessionRepo()
	repo.createdAt = start
	svc := NewWorkSessionService(repo)

	current, clock := sessionClock(start)
	svc.now = clock

	if _, err := svc.Start("user-1"); err != nil {
		t.Fatalf("start: %v", err)
	}

	*current = start.Add(10 * time.Minute)
	first, err := svc.BreakStart("user-1")
	if err != nil {
		t.Fatalf("first break start: %v", err)
	}

	*current = start.Add(20 * time.Minute)
	second, err := svc.BreakStart("user-1")
	if err != nil {
		t.Fatalf("second break start: %v", err)
	}

	if !second.BreakStart.Equal(*first.BreakStart) {
		t.Errorf("break window moved from %v to %v", *first.BreakStart, *second.BreakStart)
	}
}

func TestWorkSessionService_EndDuringBreakClosesWindow(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := newFakeSessionRepo()
	repo.createdAt = start
	svc := NewWorkSessionService(repo)

	current, clock := sessionClock(start)
	svc.now = clock

	if _, err := svc.Start("user-1"); err != nil {
		t.Fatalf("start: %v", err)
	}

	*current = start.Add(30 * time.Minute)
	if _, err := svc.BreakStart("user-1"); err != nil {
		t.Fatalf("break start: %v", err)
	}

	*current = start.Add(45 * time.Minute)
	session, err := svc.End("user-1")
	if err != nil {
		t.Fatalf("end: %v", err)
	}

	if session.Status != domain.SessionEnded {
		t.Errorf("status = %s, want %s", session.Status, domain.SessionEnded)
	}
	if session.BreakSeconds != 900 {
		t.Errorf("BreakSeconds = %d, want 900", session.BreakSeconds)
	}
	if session.EndedAt == nil || !session.EndedAt.Equal(*current) {
		t.Errorf("EndedAt = %v, want %v", session.EndedAt, *current)
	}
}

func TestWorkSessionService_TransitionsNeedOpenSession(t *testing.T) {
	tests := []struct {
		name string
		call func(*WorkSessionService) error
	}{
		{
			name: "break start",
			call: func(s *WorkSessionService) error {
				_, err := s.BreakStart("user-1")
				return err
			},
		},
		{
			name: "break end",
			call: func(s *WorkSessionService) error {
				_, err := s.BreakEnd("user-1")
				return err
			},
		},
		{
			name: "end",
			call: func(s *WorkSessionService) error {
				_, err := s.End("user-1")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewWorkSessionService(newFakeSessionRepo())

			err := tt.call(svc)
			if !errors.Is(err, domain.ErrNoActiveSession) {
				t.Errorf("error = %v, want %v", err, domain.ErrNoActiveSession)
			}
		})
	}
}

func TestWorkSessionService_ListScope(t *testing.T) {
	repo := newFakeSessionRepo()
	repo.createdAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := NewWorkSessionService(repo)

	if _, err := svc.Start("user-1"); err != nil {
		t.Fatalf("start user-1: %v", err)
	}
	if _, err := svc.Start("user-2"); err != nil {
		t.Fatalf("start user-2: %v", err)
	}

	own, err := svc.Sessions("user-1", domain.RoleDeveloper)
	if err != nil {
		t.Fatalf("developer list: %v", err)
	}
	if len(own) != 1 || own[0].UserID != "user-1" {
		t.Errorf("developer sees %d sessions, want only their own", len(own))
	}

	all, err := svc.Sessions("user-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin sees %d sessions, want 2", len(all))
	}
}
