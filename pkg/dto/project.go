package dto

import (
	"fmt"
	"strings"
)

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Brief       string `json:"brief,omitempty"`
	Priority    string `json:"priority"`
	OrderIndex  int    `json:"orderIndex"`
	CreatedAt   string `json:"createdAt"`
}

type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Brief       string `json:"brief"`
	Priority    string `json:"priority"`
	OrderIndex  int    `json:"orderIndex"`
}

func (r ProjectRequest) IsValid() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}

	return nil
}
