package dto

type User struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Status         string `json:"status"`
	StarsBalance   int64  `json:"starsBalance"`
	BonusesBalance int64  `json:"bonusesBalance"`
	RegisteredAt   string `json:"registeredAt"`
}

type ApproveRequest struct {
	UserID string `json:"userId"`
}
