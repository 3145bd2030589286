package domain

import "time"

const (
	SessionActive = "ACTIVE"
	SessionBreak  = "BREAK"
	SessionEnded  = "ENDED"
)

// WorkSession tracks one clock-in/clock-out cycle for a user. BreakStart and
// BreakEnd describe the current or most recent break window; the duration of
// every closed window is folded into BreakSeconds when the user resumes, so
// earlier breaks of the same session keep counting against elapsed time.
type WorkSession struct {
	ID           string
	UserID       string
	UserName     string
	UserEmail    string
	Status       string
	StartedAt    time.Time
	BreakStart   *time.Time
	BreakEnd     *time.Time
	BreakSeconds int64
	EndedAt      *time.Time
}

// Open reports whether the session still accepts transitions.
func (s WorkSession) Open() bool {
	return s.Status == SessionActive || s.Status == SessionBreak
}

// OnBreak reports whether a break window is currently open.
func (s WorkSession) OnBreak() bool {
	return s.BreakStart != nil && s.BreakEnd == nil
}

// Elapsed returns active working time net of breaks, clamped at zero. For an
// ended session now is ignored in favour of EndedAt.
func (s WorkSession) Elapsed(now time.Time) time.Duration {
	end := now
	if s.EndedAt != nil {
		end = *s.EndedAt
	}

	breaks := time.Duration(s.BreakSeconds) * time.Second
	if s.OnBreak() {
		open := end.Sub(*s.BreakStart)
		if open > 0 {
			breaks += open
		}
	}

	elapsed := end.Sub(s.StartedAt) - breaks
	if elapsed < 0 {
		return 0
	}

	return elapsed
}
