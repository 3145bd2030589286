package service

import (
	"time"

	"github.com/bazaan/dashboarddev/internal/domain"
)

type taskRepository interface {
	CreateTask(task domain.Task) (*domain.Task, error)
	Task(id string) (*domain.Task, error)
	Tasks(assigneeID string) ([]domain.Task, error)
	UpdateTask(task domain.Task) (*domain.Task, error)
	DeleteTask(id string) error
	UpdateTaskOrder(taskIDs []string) error
	AwardTaskStars(taskID, assigneeID, approverID string, stars int64, reason string) (*domain.AwardResult, error)
}

type TaskService struct {
	repo          taskRepository
	notifications notificationRepository
	audit         auditRepository
	now           func() time.Time
}

func NewTaskService(repo taskRepository, notifications notificationRepository, audit auditRepository) *TaskService {
	return &TaskService{
		repo:          repo,
		notifications: notifications,
		audit:         audit,
		now:           time.Now,
	}
}

func (s *TaskService) Create(actorID, actorRole string, task domain.Task) (*domain.Task, error) {
	if actorRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	if task.Status == "" {
		task.Status = domain.TaskStatusNotStarted
	}
	if task.Recurrence == "" {
		task.Recurrence = domain.RecurrenceNone
	}

	created, err := s.repo.CreateTask(task)
	if err != nil {
		return nil, err
	}

	appendAudit(s.audit, domain.AuditEntry{
		ActorID:  actorID,
		Action:   domain.AuditCreate,
		Entity:   "TASK",
		EntityID: created.ID,
	})

	return created, nil
}

// Tasks returns every task for admins and the caller's assignments otherwise.
func (s *TaskService) Tasks(callerID, callerRole string) ([]domain.Task, error) {
	if callerRole == domain.RoleAdmin {
		return s.repo.Tasks("")
	}

	return s.repo.Tasks(callerID)
}

// Update applies a patch. Developers may only change the status of their own
// tasks. An admin setting StarsAwarded on a task that never had stars awarded
// approves it: the approval mark and the ledger credit commit together.
func (s *TaskService) Update(actorID, actorRole, taskID string, patch domain.TaskPatch) (*domain.Task, error) {
	task, err := s.repo.Task(taskID)
	if err != nil {
		return nil, err
	}

	if actorRole != domain.RoleAdmin {
		if patchChangesMoreThanStatus(patch) {
			return nil, domain.ErrForbidden
		}
		if task.AssigneeID == nil || *task.AssigneeID != actorID {
			return nil, domain.ErrForbidden
		}
	}

	applyPatch(task, patch, s.now())

	updated, err := s.repo.UpdateTask(*task)
	if err != nil {
		return nil, err
	}

	if patch.StarsAwarded != nil && actorRole == domain.RoleAdmin {
		updated, err = s.awardTask(updated, actorID, *patch.StarsAwarded)
		if err != nil {
			return nil, err
		}
	}

	appendAudit(s.audit, domain.AuditEntry{
		ActorID:  actorID,
		Action:   domain.AuditUpdate,
		Entity:   "TASK",
		EntityID: taskID,
	})

	return updated, nil
}

func (s *TaskService) Delete(actorID, actorRole, taskID string) error {
	if actorRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if err := s.repo.DeleteTask(taskID); err != nil {
		return err
	}

	appendAudit(s.audit, domain.AuditEntry{
		ActorID:  actorID,
		Action:   domain.AuditDelete,
		Entity:   "TASK",
		EntityID: taskID,
	})

	return nil
}

func (s *TaskService) Reorder(actorRole string, taskIDs []string) error {
	if actorRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	return s.repo.UpdateTaskOrder(taskIDs)
}

func (s *TaskService) awardTask(task *domain.Task, approverID string, stars int64) (*domain.Task, error) {
	if stars <= 0 {
		return nil, domain.ErrInvalidStarCount
	}
	if task.StarsAwarded > 0 {
		return nil, domain.ErrStarsAlreadyAwarded
	}
	if task.AssigneeID == nil {
		return nil, domain.ErrTaskHasNoAssignee
	}

	result, err := s.repo.AwardTaskStars(task.ID, *task.AssigneeID, approverID, stars, ReasonTaskApproval)
	if err != nil {
		return nil, err
	}

	recordAward(s.notifications, *task.AssigneeID, stars, result)

	return s.repo.Task(task.ID)
}

func applyPatch(task *domain.Task, patch domain.TaskPatch, now time.Time) {
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Status != nil {
		task.Status = *patch.Status
		if task.Status == domain.TaskStatusDone && task.CompletedAt == nil {
			task.CompletedAt = &now
		}
	}
	if patch.Deadline != nil {
		task.Deadline = patch.Deadline
	}
	if patch.AssigneeID != nil {
		task.AssigneeID = patch.AssigneeID
	}
	if patch.ProjectID != nil {
		task.ProjectID = patch.ProjectID
	}
	if patch.Recurrence != nil {
		task.Recurrence = *patch.Recurrence
	}
	if patch.OrderIndex != nil {
		task.OrderIndex = *patch.OrderIndex
	}
	if patch.TimeEstimateMins != nil {
		task.TimeEstimateMins = *patch.TimeEstimateMins
	}
}

func patchChangesMoreThanStatus(patch domain.TaskPatch) bool {
	return patch.Title != nil || patch.Description != nil || patch.Priority != nil ||
		patch.Deadline != nil || patch.AssigneeID != nil || patch.ProjectID != nil ||
		patch.Recurrence != nil || patch.OrderIndex != nil || patch.TimeEstimateMins != nil ||
		patch.StarsAwarded != nil
}
