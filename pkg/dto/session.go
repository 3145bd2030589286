package dto

import "fmt"

const (
	SessionActionStart      = "start"
	SessionActionBreakStart = "break_start"
	SessionActionBreakEnd   = "break_end"
	SessionActionEnd        = "end"
)

/**
  { "action": "break_start" }
*/

type SessionActionRequest struct {
	Action string `json:"action"`
}

func (r SessionActionRequest) IsValid() error {
	switch r.Action {
	case SessionActionStart, SessionActionBreakStart, SessionActionBreakEnd, SessionActionEnd:
		return nil
	}

	return fmt.Errorf("unknown action %q", r.Action)
}

type Session struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId"`
	UserName       string  `json:"userName,omitempty"`
	UserEmail      string  `json:"userEmail,omitempty"`
	Status         string  `json:"status"`
	StartedAt      string  `json:"startedAt"`
	BreakStart     *string `json:"breakStart,omitempty"`
	BreakEnd       *string `json:"breakEnd,omitempty"`
	EndedAt        *string `json:"endedAt,omitempty"`
	ElapsedSeconds int64   `json:"elapsedSeconds"`
}
