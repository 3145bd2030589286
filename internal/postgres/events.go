package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bazaan/dashboarddev/internal/domain"
)

const eventColumns = `id, title, description, type, start_date, end_date, progress, project_id, owner_id, created_at`

func (p *Postgres) CreateEvent(event domain.Event) (*domain.Event, error) {
	event.ID = uuid.NewString()
	_, err := p.DB.Exec(
		`INSERT INTO events (id, title, description, type, start_date, end_date, progress, project_id, owner_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		event.ID, event.Title, event.Description, event.Type, event.StartDate,
		event.EndDate, event.Progress, event.ProjectID, event.OwnerID,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}

	return p.Event(event.ID)
}

func (p *Postgres) Event(id string) (*domain.Event, error) {
	row := p.DB.QueryRow("SELECT "+eventColumns+" FROM events WHERE id = $1", id)

	var event domain.Event
	err := scanEvent(row.Scan, &event)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("error fetching event: %w", err)
	}

	return &event, nil
}

// Events filters by type or project when set, and by calendar range when both
// bounds are non-zero.
func (p *Postgres) Events(eventType, projectID string, from, to time.Time) ([]domain.Event, error) {
	query := "SELECT " + eventColumns + " FROM events WHERE 1=1"
	var args []any
	if eventType != "" {
		args = append(args, eventType)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if projectID != "" {
		args = append(args, projectID)
		query += fmt.Sprintf(" AND project_id = $%d", len(args))
	}
	if !from.IsZero() && !to.IsZero() {
		args = append(args, from, to)
		query += fmt.Sprintf(" AND start_date >= $%d AND start_date <= $%d", len(args)-1, len(args))
	}
	query += " ORDER BY start_date"

	rows, err := p.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error fetching events: %w", err)
	}
	defer closeRows(rows)

	var events []domain.Event
	for rows.Next() {
		var event domain.Event
		if err := scanEvent(rows.Scan, &event); err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over events: %w", err)
	}

	return events, nil
}

func (p *Postgres) UpcomingEvents(now time.Time, limit int) ([]domain.Event, error) {
	rows, err := p.DB.Query(
		"SELECT "+eventColumns+" FROM events WHERE start_date >= $1 ORDER BY start_date LIMIT $2",
		now, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("error fetching upcoming events: %w", err)
	}
	defer closeRows(rows)

	var events []domain.Event
	for rows.Next() {
		var event domain.Event
		if err := scanEvent(rows.Scan, &event); err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over events: %w", err)
	}

	return events, nil
}

func (p *Postgres) UpdateEvent(event domain.Event) (*domain.Event, error) {
	result, err := p.DB.Exec(
		`UPDATE events SET title = $1, description = $2, type = $3, start_date = $4,
			end_date = $5, progress = $6, project_id = $7 WHERE id = $8`,
		event.Title, event.Description, event.Type, event.StartDate,
		event.EndDate, event.Progress, event.ProjectID, event.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error checking rows affected for event update: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrEventNotFound
	}

	return p.Event(event.ID)
}

func (p *Postgres) DeleteEvent(id string) error {
	result, err := p.DB.Exec("DELETE FROM events WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected for event delete: %w", err)
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func scanEvent(scan func(...any) error, event *domain.Event) error {
	return scan(
		&event.ID, &event.Title, &event.Description, &event.Type, &event.StartDate,
		&event.EndDate, &event.Progress, &event.ProjectID, &event.OwnerID, &event.CreatedAt,
	)
}
