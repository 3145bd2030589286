package dto

import (
	"fmt"
	"strings"
	"time"
)

type Task struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description,omitempty"`
	Priority         string  `json:"priority"`
	Status           string  `json:"status"`
	Deadline         *string `json:"deadline,omitempty"`
	AssigneeID       *string `json:"assigneeId,omitempty"`
	ProjectID        *string `json:"projectId,omitempty"`
	Recurrence       string  `json:"recurrenceType"`
	OrderIndex       int     `json:"orderIndex"`
	TimeEstimateMins int     `json:"timeEstimateMins"`
	StarsAwarded     int64   `json:"starsAwarded"`
	CompletedAt      *string `json:"completedAt,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

type CreateTaskRequest struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Priority         string  `json:"priority"`
	Status           string  `json:"status"`
	Deadline         *string `json:"deadline"`
	AssigneeID       *string `json:"assigneeId"`
	ProjectID        *string `json:"projectId"`
	Recurrence       string  `json:"recurrenceType"`
	OrderIndex       int     `json:"orderIndex"`
	TimeEstimateMins int     `json:"timeEstimateMins"`
}

func (r CreateTaskRequest) IsValid() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}

	return nil
}

type UpdateTaskRequest struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	Priority         *string `json:"priority"`
	Status           *string `json:"status"`
	Deadline         *string `json:"deadline"`
	AssigneeID       *string `json:"assigneeId"`
	ProjectID        *string `json:"projectId"`
	Recurrence       *string `json:"recurrenceType"`
	OrderIndex       *int    `json:"orderIndex"`
	TimeEstimateMins *int    `json:"timeEstimateMins"`
	StarsAwarded     *int64  `json:"starsAwarded"`
}

type OrderRequest struct {
	IDs []string `json:"ids"`
}

// ParseDeadline accepts RFC 3339 or a bare date.
func ParseDeadline(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", value)
}
