package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bazaan/dashboarddev/internal/domain"
)

const taskColumns = `id, title, description, priority, status, deadline, assignee_id, project_id,
	recurrence, order_index, time_estimate_mins, stars_awarded, approved_by, completed_at, created_at, updated_at`

func (p *Postgres) CreateTask(task domain.Task) (*domain.Task, error) {
	task.ID = uuid.NewString()
	_, err := p.DB.Exec(
		`INSERT INTO tasks (id, title, description, priority, status, deadline, assignee_id,
			project_id, recurrence, order_index, time_estimate_mins)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		task.ID, task.Title, task.Description, task.Priority, task.Status, task.Deadline,
		task.AssigneeID, task.ProjectID, task.Recurrence, task.OrderIndex, task.TimeEstimateMins,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	return p.Task(task.ID)
}

func (p *Postgres) Task(id string) (*domain.Task, error) {
	row := p.DB.QueryRow("SELECT "+taskColumns+" FROM tasks WHERE id = $1", id)

	var task domain.Task
	err := scanTask(row.Scan, &task)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("error fetching task: %w", err)
	}

	return &task, nil
}

// Tasks lists every task when assigneeID is empty, otherwise only the
// assignee's.
func (p *Postgres) Tasks(assigneeID string) ([]domain.Task, error) {
	query := "SELECT " + taskColumns + " FROM tasks"
	var args []any
	if assigneeID != "" {
		query += " WHERE assignee_id = $1"
		args = append(args, assigneeID)
	}
	query += " ORDER BY order_index, priority, deadline NULLS LAST"

	rows, err := p.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error fetching tasks: %w", err)
	}
	defer closeRows(rows)

	var tasks []domain.Task
	for rows.Next() {
		var task domain.Task
		if err := scanTask(rows.Scan, &task); err != nil {
			return nil, fmt.Errorf("error scanning task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over tasks: %w", err)
	}

	return tasks, nil
}

func (p *Postgres) UpdateTask(task domain.Task) (*domain.Task, error) {
	result, err := p.DB.Exec(
		`UPDATE tasks SET title = $1, description = $2, priority = $3, status = $4,
			deadline = $5, assignee_id = $6, project_id = $7, recurrence = $8,
			order_index = $9, time_estimate_mins = $10, completed_at = $11, updated_at = now()
			WHERE id = $12`,
		task.Title, task.Description, task.Priority, task.Status, task.Deadline,
		task.AssigneeID, task.ProjectID, task.Recurrence, task.OrderIndex,
		task.TimeEstimateMins, task.CompletedAt, task.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error checking rows affected for task update: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrTaskNotFound
	}

	return p.Task(task.ID)
}

func (p *Postgres) DeleteTask(id string) error {
	result, err := p.DB.Exec("DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error deleting task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected for task delete: %w", err)
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (p *Postgres) UpdateTaskOrder(taskIDs []string) error {
	tx, err := p.DB.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	for index, id := range taskIDs {
		if _, err := tx.Exec("UPDATE tasks SET order_index = $1, updated_at = now() WHERE id = $2", index, id); err != nil {
			rollback(tx)
			return fmt.Errorf("error reordering task: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		rollback(tx)
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// TaskCounts returns total, completed, in-progress and due-this-week counts,
// for every task when assigneeID is empty.
func (p *Postgres) TaskCounts(assigneeID string, weekStart, weekEnd time.Time) (*domain.Summary, error) {
	query := `SELECT count(*),
			count(*) FILTER (WHERE status = $1),
			count(*) FILTER (WHERE status = $2),
			count(*) FILTER (WHERE deadline BETWEEN $3 AND $4)
		FROM tasks`
	args := []any{domain.TaskStatusDone, domain.TaskStatusInProgress, weekStart, weekEnd}
	if assigneeID != "" {
		query += " WHERE assignee_id = $5"
		args = append(args, assigneeID)
	}

	var summary domain.Summary
	err := p.DB.QueryRow(query, args...).
		Scan(&summary.TotalTasks, &summary.CompletedTasks, &summary.InProgressTasks, &summary.WeeklyTasks)
	if err != nil {
		return nil, fmt.Errorf("error counting tasks: %w", err)
	}

	return &summary, nil
}

func scanTask(scan func(...any) error, task *domain.Task) error {
	return scan(
		&task.ID, &task.Title, &task.Description, &task.Priority, &task.Status,
		&task.Deadline, &task.AssigneeID, &task.ProjectID, &task.Recurrence,
		&task.OrderIndex, &task.TimeEstimateMins, &task.StarsAwarded,
		&task.ApprovedByID, &task.CompletedAt, &task.CreatedAt, &task.UpdatedAt,
	)
}
