package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bazaan/dashboarddev/internal/domain"
)

const projectColumns = `id, name, description, brief, priority, order_index, created_at`

func (p *Postgres) CreateProject(project domain.Project) (*domain.Project, error) {
	project.ID = uuid.NewString()
	_, err := p.DB.Exec(
		`INSERT INTO projects (id, name, description, brief, priority, order_index)
			VALUES ($1, $2, $3, $4, $5, $6)`,
		project.ID, project.Name, project.Description, project.Brief, project.Priority, project.OrderIndex,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating project: %w", err)
	}

	return p.Project(project.ID)
}

func (p *Postgres) Project(id string) (*domain.Project, error) {
	row := p.DB.QueryRow("SELECT "+projectColumns+" FROM projects WHERE id = $1", id)

	var project domain.Project
	err := row.Scan(
		&project.ID, &project.Name, &project.Description, &project.Brief,
		&project.Priority, &project.OrderIndex, &project.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("error fetching project: %w", err)
	}

	return &project, nil
}

func (p *Postgres) Projects() ([]domain.Project, error) {
	rows, err := p.DB.Query("SELECT " + projectColumns + " FROM projects ORDER BY order_index, created_at")
	if err != nil {
		return nil, fmt.Errorf("error fetching projects: %w", err)
	}
	defer closeRows(rows)

	var projects []domain.Project
	for rows.Next() {
		var project domain.Project
		err := rows.Scan(
			&project.ID, &project.Name, &project.Description, &project.Brief,
			&project.Priority, &project.OrderIndex, &project.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning project: %w", err)
		}
		projects = append(projects, project)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over projects: %w", err)
	}

	return projects, nil
}

func (p *Postgres) UpdateProject(project domain.Project) (*domain.Project, error) {
	result, err := p.DB.Exec(
		`UPDATE projects SET name = $1, description = $2, brief = $3, priority = $4, order_index = $5
			WHERE id = $6`,
		project.Name, project.Description, project.Brief, project.Priority, project.OrderIndex, project.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error checking rows affected for project update: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrProjectNotFound
	}

	return p.Project(project.ID)
}

func (p *Postgres) DeleteProject(id string) error {
	result, err := p.DB.Exec("DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected for project delete: %w", err)
	}
	if affected == 0 {
		return domain.ErrProjectNotFound
	}

	return nil
}

func (p *Postgres) UpdateProjectOrder(projectIDs []string) error {
	tx, err := p.DB.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	for index, id := range projectIDs {
		if _, err := tx.Exec("UPDATE projects SET order_index = $1 WHERE id = $2", index, id); err != nil {
			rollback(tx)
			return fmt.Errorf("error reordering project: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		rollback(tx)
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
