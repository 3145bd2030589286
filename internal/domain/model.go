package domain

import "time"

const (
	RoleAdmin     = "ADMIN"
	RoleDeveloper = "DEVELOPER"

	UserStatusPending = "PENDING"
	UserStatusActive  = "ACTIVE"

	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"

	TaskStatusNotStarted = "NOT_STARTED"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusDone       = "DONE"

	RecurrenceNone   = "NONE"
	RecurrenceDaily  = "DAILY"
	RecurrenceWeekly = "WEEKLY"

	BonusTypeAuto   = "AUTO"
	BonusTypeManual = "MANUAL"
	BonusActive     = "ACTIVE"

	EventTypeDevelopment = "DEVELOPMENT"
	EventTypeDelivery    = "DELIVERY"
	EventTypeOther       = "OTHER"

	NoteScopePersonal = "PERSONAL"
	NoteScopeProject  = "PROJECT"
	NoteScopeShared   = "SHARED"

	ReportDaily  = "DAILY"
	ReportWeekly = "WEEKLY"

	AuditCreate  = "CREATE"
	AuditUpdate  = "UPDATE"
	AuditDelete  = "DELETE"
	AuditApprove = "APPROVE"
	AuditAward   = "AWARD"
)

type User struct {
	ID             string
	Email          string
	Password       string
	Name           string
	Role           string
	Status         string
	StarsBalance   int64
	BonusesBalance int64
	ApprovedAt     *time.Time
	ApprovedByID   *string
	RegisteredAt   time.Time
}

// Balance is the pair of incentive balances after an award.
type Balance struct {
	Stars   int64
	Bonuses int64
}

type StarTransaction struct {
	ID        string
	UserID    string
	Stars     int64
	Reason    string
	TaskID    *string
	CreatedAt time.Time
}

type Bonus struct {
	ID        string
	UserID    string
	Type      string
	Status    string
	CreatedAt time.Time
}

type Task struct {
	ID               string
	Title            string
	Description      string
	Priority         string
	Status           string
	Deadline         *time.Time
	AssigneeID       *string
	ProjectID        *string
	Recurrence       string
	OrderIndex       int
	TimeEstimateMins int
	StarsAwarded     int64
	ApprovedByID     *string
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Project struct {
	ID          string
	Name        string
	Description string
	Brief       string
	Priority    string
	OrderIndex  int
	CreatedAt   time.Time
}

type Event struct {
	ID          string
	Title       string
	Description string
	Type        string
	StartDate   time.Time
	EndDate     time.Time
	Progress    int
	ProjectID   *string
	OwnerID     string
	CreatedAt   time.Time
}

type Note struct {
	ID        string
	Title     string
	Content   string
	Scope     string
	ProjectID *string
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Report struct {
	ID         string
	Title      string
	Body       string
	Type       string
	AuthorID   string
	AuthorName string
	CreatedAt  time.Time
}

type Notification struct {
	ID        string
	UserID    string
	Title     string
	Body      string
	Level     string
	CreatedAt time.Time
}

type AuditEntry struct {
	ID        string
	ActorID   string
	Action    string
	Entity    string
	EntityID  string
	Detail    string
	CreatedAt time.Time
}

// TaskPatch carries the fields of a task update request; nil means the field
// is untouched.
type TaskPatch struct {
	Title            *string
	Description      *string
	Priority         *string
	Status           *string
	Deadline         *time.Time
	AssigneeID       *string
	ProjectID        *string
	Recurrence       *string
	OrderIndex       *int
	TimeEstimateMins *int
	StarsAwarded     *int64
}

// Summary aggregates the dashboard overview counters for one caller.
type Summary struct {
	TotalTasks      int64
	CompletedTasks  int64
	InProgressTasks int64
	WeeklyTasks     int64
	StarsBalance    int64
	BonusesBalance  int64
}
