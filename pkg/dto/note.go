package dto

import (
	"fmt"
	"strings"
)

type Note struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Scope     string  `json:"scope"`
	ProjectID *string `json:"projectId,omitempty"`
	AuthorID  string  `json:"authorId"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type NoteRequest struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Scope     string  `json:"scope"`
	ProjectID *string `json:"projectId"`
}

func (r NoteRequest) IsValid() error {
	if len(strings.TrimSpace(r.Title)) < 2 {
		return fmt.Errorf("title must be at least 2 characters")
	}
	if len(strings.TrimSpace(r.Content)) < 2 {
		return fmt.Errorf("content must be at least 2 characters")
	}

	return nil
}
