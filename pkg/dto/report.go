package dto

import (
	"fmt"
	"strings"
)

type Report struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Type       string `json:"type"`
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

type ReportRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Type  string `json:"type"`
}

func (r ReportRequest) IsValid() error {
	if len(strings.TrimSpace(r.Title)) < 2 {
		return fmt.Errorf("title must be at least 2 characters")
	}
	if len(strings.TrimSpace(r.Body)) < 2 {
		return fmt.Errorf("body must be at least 2 characters")
	}

	return nil
}
