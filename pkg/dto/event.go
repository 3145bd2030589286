package dto

import (
	"fmt"
	"strings"
)

type Event struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Type        string  `json:"type"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Progress    int     `json:"progress"`
	ProjectID   *string `json:"projectId,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

type EventRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Progress    int     `json:"progress"`
	ProjectID   *string `json:"projectId"`
}

func (r EventRequest) IsValid() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if r.StartDate == "" || r.EndDate == "" {
		return fmt.Errorf("startDate and endDate are required")
	}
	if r.Progress < 0 || r.Progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100")
	}

	return nil
}
