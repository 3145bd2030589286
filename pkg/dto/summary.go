package dto

type Summary struct {
	WeeklyTasks     int64 `json:"weeklyTasks"`
	TotalTasks      int64 `json:"totalTasks"`
	CompletedTasks  int64 `json:"completedTasks"`
	InProgressTasks int64 `json:"inProgressTasks"`
	StarsBalance    int64 `json:"starsBalance"`
	BonusesBalance  int64 `json:"bonusesBalance"`
}

type Notification struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Level     string `json:"level"`
	CreatedAt string `json:"createdAt"`
}

type Overview struct {
	Summary       Summary        `json:"summary"`
	Briefings     []Event        `json:"briefings"`
	Notifications []Notification `json:"notifications"`
}
