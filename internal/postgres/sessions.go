package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bazaan/dashboarddev/internal/domain"
	"github.com/bazaan/dashboarddev/pkg/logger"
)

func (p *Postgres) ActiveSession(userID string) (*domain.WorkSession, error) {
	row := p.DB.QueryRow(
		`SELECT id, user_id, status, started_at, break_start, break_end, break_seconds, ended_at
			FROM work_sessions WHERE user_id = $1 AND status IN ($2, $3)`,
		userID, domain.SessionActive, domain.SessionBreak,
	)

	var session domain.WorkSession
	err := row.Scan(
		&session.ID, &session.UserID, &session.Status, &session.StartedAt,
		&session.BreakStart, &session.BreakEnd, &session.BreakSeconds, &session.EndedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoActiveSession
		}
		return nil, fmt.Errorf("error fetching active session: %w", err)
	}

	return &session, nil
}

func (p *Postgres) CreateSession(userID string) (*domain.WorkSession, error) {
	id := uuid.NewString()
	row := p.DB.QueryRow(
		`INSERT INTO work_sessions (id, user_id, status) VALUES ($1, $2, $3)
			RETURNING id, user_id, status, started_at, break_start, break_end, break_seconds, ended_at`,
		id, userID, domain.SessionActive,
	)

	var session domain.WorkSession
	err := row.Scan(
		&session.ID, &session.UserID, &session.Status, &session.StartedAt,
		&session.BreakStart, &session.BreakEnd, &session.BreakSeconds, &session.EndedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			logger.Log.Warn("open session already exists", logger.String("user_id", userID))
			return nil, domain.ErrSessionExists
		}
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	return &session, nil
}

func (p *Postgres) UpdateSession(session domain.WorkSession) error {
	_, err := p.DB.Exec(
		`UPDATE work_sessions SET status = $1, break_start = $2, break_end = $3,
			break_seconds = $4, ended_at = $5 WHERE id = $6`,
		session.Status, session.BreakStart, session.BreakEnd,
		session.BreakSeconds, session.EndedAt, session.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating session: %w", err)
	}

	return nil
}

// Sessions returns sessions most recent first, for every user when userID is
// empty.
func (p *Postgres) Sessions(userID string, limit int) ([]domain.WorkSession, error) {
	query := `SELECT s.id, s.user_id, u.name, u.email, s.status, s.started_at,
			s.break_start, s.break_end, s.break_seconds, s.ended_at
		FROM work_sessions s JOIN users u ON u.id = s.user_id`
	args := []any{limit}
	if userID != "" {
		query += " WHERE s.user_id = $2"
		args = append(args, userID)
	}
	query += " ORDER BY s.started_at DESC LIMIT $1"

	rows, err := p.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error fetching sessions: %w", err)
	}
	defer closeRows(rows)

	var sessions []domain.WorkSession
	for rows.Next() {
		var session domain.WorkSession
		err := rows.Scan(
			&session.ID, &session.UserID, &session.UserName, &session.UserEmail,
			&session.Status, &session.StartedAt, &session.BreakStart, &session.BreakEnd,
			&session.BreakSeconds, &session.EndedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning session: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over sessions: %w", err)
	}

	return sessions, nil
}
