package dto

import (
	"fmt"
	"strings"
)

/**
  {
      "email": "dev@example.com",
      "stars": 2,
      "reason": "Great sprint"
  }
*/

type AwardRequest struct {
	Email  string `json:"email"`
	Stars  int64  `json:"stars"`
	Reason string `json:"reason,omitempty"`
}

// IsValid enforces the admin-grant policy bound of 1..3 stars per award.
func (a AwardRequest) IsValid() error {
	if strings.TrimSpace(a.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if a.Stars < 1 || a.Stars > 3 {
		return fmt.Errorf("stars must be between 1 and 3")
	}

	return nil
}

type StarTransaction struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Stars     int64   `json:"stars"`
	Reason    string  `json:"reason"`
	TaskID    *string `json:"taskId,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

type AwardResponse struct {
	StarsBalance   int64 `json:"starsBalance"`
	BonusesBalance int64 `json:"bonusesBalance"`
	BonusesGranted int64 `json:"bonusesGranted"`
}
