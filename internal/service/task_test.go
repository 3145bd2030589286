package service

import (
	"errors"
	"testing"
	"time"

	"github.com/bazaan/dashboarddev/internal/domain"
	"github.com/google/uuid"
)

type fakeTaskRepo struct {
	tasks    map[string]*domain.Task
	balances map[string]*domain.User
	awards   int
	reorders [][]string
}

func newFakeTaskRepo(tasks ...*domain.Task) *fakeTaskRepo {
	repo := &fakeTaskRepo{
		tasks:    map[string]*domain.Task{},
		balances: map[string]*domain.User{},
	}
	for _, task := range tasks {
		repo.tasks[task.ID] = task
	}

	return repo
}

func (f *fakeTaskRepo) CreateTask(task domain.Task) (*domain.Task, error) {
	task.ID = uuid.NewString()
	f.tasks[task.ID] = &task
	copied := task

	return &copied, nil
}

func (f *fakeTaskRepo) Task(id string) (*domain.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	copied := *task

	return &copied, nil
}

func (f *fakeTaskRepo) Tasks(assigneeID string) ([]domain.Task, error) {
	var result []domain.Task
	for _, task := range f.tasks {
		if assigneeID != "" && (task.AssigneeID == nil || *task.AssigneeID != assigneeID) {
			continue
		}
		result = append(result, *task)
	}

	return result, nil
}

func (f *fakeTaskRepo) UpdateTask(task domain.Task) (*domain.Task, error) {
	if _, ok := f.tasks[task.ID]; !ok {
		return nil, domain.ErrTaskNotFound
	}
	copied := task
	f.tasks[task.ID] = &copied
	returned := copied

	return &returned, nil
}

func (f *fakeTaskRepo) DeleteTask(id string) error {
	if _, ok := f.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(f.tasks, id)

	return nil
}

func (f *fakeTaskRepo) UpdateTaskOrder(taskIDs []string) error {
	f.reorders = append(f.reorders, taskIDs)
	for i, id := range taskIDs {
		if task, ok := f.tasks[id]; ok {
			task.OrderIndex = i
		}
	}

	return nil
}

func (f *fakeTaskRepo) AwardTaskStars(taskID, assigneeID, approverID string, stars int64, reason string) (*domain.AwardResult, error) {
	task, ok := f.tasks[taskID]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	if task.StarsAwarded > 0 {
		return nil, domain.ErrStarsAlreadyAwarded
	}

	task.StarsAwarded = stars
	task.ApprovedByID = &approverID
	f.awards++

	user, ok := f.balances[assigneeID]
	if !ok {
		user = &domain.User{ID: assigneeID}
		f.balances[assigneeID] = user
	}
	granted := domain.BonusesToGrant(user.StarsBalance, stars)
	user.StarsBalance += stars
	user.BonusesBalance += granted

	return &domain.AwardResult{
		Stars:          user.StarsBalance,
		Bonuses:        user.BonusesBalance,
		BonusesGranted: granted,
	}, nil
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestTaskService_CreateRequiresAdmin(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, &fakeNotificationRepo{}, &fakeAuditRepo{})

	if _, err := svc.Create("dev-1", domain.RoleDeveloper, domain.Task{Title: "x"}); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("developer create error = %v, want %v", err, domain.ErrForbidden)
	}

	created, err := svc.Create("admin-1", domain.RoleAdmin, domain.Task{Title: "x"})
	if err != nil {
		t.Fatalf("admin create: %v", err)
	}
	if created.Status != domain.TaskStatusNotStarted {
		t.Errorf("default status = %s, want %s", created.Status, domain.TaskStatusNotStarted)
	}
	if created.Recurrence != domain.RecurrenceNone {
		t.Errorf("default recurrence = %s, want %s", created.Recurrence, domain.RecurrenceNone)
	}
}

func TestTaskService_DeveloperMayOnlyChangeOwnStatus(t *testing.T) {
	task := &domain.Task{ID: "task-1", Title: "fix bug", AssigneeID: strPtr("dev-1"), Status: domain.TaskStatusNotStarted}
	repo := newFakeTaskRepo(task)
	svc := NewTaskService(repo, &fakeNotificationRepo{}, &fakeAuditRepo{})

	_, err := svc.Update("dev-1", domain.RoleDeveloper, "task-1", domain.TaskPatch{Title: strPtr("renamed")})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("title patch error = %v, want %v", err, domain.ErrForbidden)
	}

	_, err = svc.Update("dev-2", domain.RoleDeveloper, "task-1", domain.TaskPatch{Status: strPtr(domain.TaskStatusInProgress)})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("other user's task error = %v, want %v", err, domain.ErrForbidden)
	}

	updated, err := svc.Update("dev-1", domain.RoleDeveloper, "task-1", domain.TaskPatch{Status: strPtr(domain.TaskStatusInProgress)})
	if err != nil {
		t.Fatalf("own status patch: %v", err)
	}
	if updated.Status != domain.TaskStatusInProgress {
		t.Errorf("status = %s, want %s", updated.Status, domain.TaskStatusInProgress)
	}
}

func TestTaskService_CompletionStampsCompletedAt(t *testing.T) {
	task := &domain.Task{ID: "task-1", AssigneeID: strPtr("dev-1"), Status: domain.TaskStatusInProgress}
	repo := newFakeTaskRepo(task)
	svc := NewTaskService(repo, &fakeNotificationRepo{}, &fakeAuditRepo{})

	done := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return done }

	updated, err := svc.Update("dev-1", domain.RoleDeveloper, "task-1", domain.TaskPatch{Status: strPtr(domain.TaskStatusDone)})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if updated.CompletedAt == nil || !updated.CompletedAt.Equal(done) {
		t.Errorf("CompletedAt = %v, want %v", updated.CompletedAt, done)
	}
}

func TestTaskService_ApprovalAwardsStarsOnce(t *testing.T) {
	task := &domain.Task{ID: "task-1", AssigneeID: strPtr("dev-1"), Status: domain.TaskStatusDone}
	repo := newFakeTaskRepo(task)
	repo.balances["dev-1"] = &domain.User{ID: "dev-1", StarsBalance: 2}
	notifications := &fakeNotificationRepo{}
	svc := NewTaskService(repo, notifications, &fakeAuditRepo{})

	updated, err := svc.Update("admin-1", domain.RoleAdmin, "task-1", domain.TaskPatch{StarsAwarded: int64Ptr(1)})
	if err != nil {
		t.Fatalf("approval: %v", err)
	}
	if updated.StarsAwarded != 1 {
		t.Errorf("StarsAwarded = %d, want 1", updated.StarsAwarded)
	}

	assignee := repo.balances["dev-1"]
	if assignee.StarsBalance != 3 {
		t.Errorf("stars balance = %d, want 3", assignee.StarsBalance)
	}
	if assignee.BonusesBalance != 1 {
		t.Errorf("bonuses balance = %d, want 1", assignee.BonusesBalance)
	}
	if len(notifications.notifications) != 1 {
		t.Errorf("sent %d notifications, want 1", len(notifications.notifications))
	}

	_, err = svc.Update("admin-1", domain.RoleAdmin, "task-1", domain.TaskPatch{StarsAwarded: int64Ptr(2)})
	if !errors.Is(err, domain.ErrStarsAlreadyAwarded) {
		t.Errorf("second approval error = %v, want %v", err, domain.ErrStarsAlreadyAwarded)
	}
	if repo.awards != 1 {
		t.Errorf("ledger credited %d times, want 1", repo.awards)
	}
}

func TestTaskService_ApprovalValidation(t *testing.T) {
	tests := []struct {
		name    string
		task    *domain.Task
		stars   int64
		wantErr error
	}{
		{
			name:    "unassigned task",
			task:    &domain.Task{ID: "task-1", Status: domain.TaskStatusDone},
			stars:   1,
			wantErr: domain.ErrTaskHasNoAssignee,
		},
		{
			name:    "zero stars",
			task:    &domain.Task{ID: "task-1", AssigneeID: strPtr("dev-1")},
			stars:   0,
			wantErr: domain.ErrInvalidStarCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeTaskRepo(tt.task)
			svc := NewTaskService(repo, &fakeNotificationRepo{}, &fakeAuditRepo{})

			_, err := svc.Update("admin-1", domain.RoleAdmin, tt.task.ID, domain.TaskPatch{StarsAwarded: int64Ptr(tt.stars)})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if repo.awards != 0 {
				t.Errorf("ledger credited %d times, want 0", repo.awards)
			}
		})
	}
}

func TestTaskService_ListScope(t *testing.T) {
	repo := newFakeTaskRepo(
		&domain.Task{ID: "task-1", AssigneeID: strPtr("dev-1")},
		&domain.Task{ID: "task-2", AssigneeID: strPtr("dev-2")},
		&domain.Task{ID: "task-3"},
	)
	svc := NewTaskService(repo, &fakeNotificationRepo{}, &fakeAuditRepo{})

	own, err := svc.Tasks("dev-1", domain.RoleDeveloper)
	if err != nil {
		t.Fatalf("developer list: %v", err)
	}
	if len(own) != 1 {
		t.Errorf("developer sees %d tasks, want 1", len(own))
	}

	all, err := svc.Tasks("admin-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("admin sees %d tasks, want 3", len(all))
	}
}

func TestTaskService_DeleteAndReorderRequireAdmin(t *testing.T) {
	repo := newFakeTaskRepo(&domain.Task{ID: "task-1"}, &domain.Task{ID: "task-2"})
	svc := NewTaskService(repo, &fakeNotificationRepo{}, &fakeAuditRepo{})

	if err := svc.Delete("dev-1", domain.RoleDeveloper, "task-1"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("developer delete error = %v, want %v", err, domain.ErrForbidden)
	}
	if err := svc.Reorder(domain.RoleDeveloper, []string{"task-2", "task-1"}); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("developer reorder error = %v, want %v", err, domain.ErrForbidden)
	}

	if err := svc.Reorder(domain.RoleAdmin, []string{"task-2", "task-1"}); err != nil {
		t.Fatalf("admin reorder: %v", err)
	}
	if repo.tasks["task-2"].OrderIndex != 0 || repo.tasks["task-1"].OrderIndex != 1 {
		t.Error("reorder did not reindex tasks")
	}

	if err := svc.Delete("admin-1", domain.RoleAdmin, "task-1"); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, ok := repo.tasks["task-1"]; ok {
		t.Error("task still present after delete")
	}
}
