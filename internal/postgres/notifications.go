package postgres

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/bazaan/dashboarddev/internal/domain"
)

func (p *Postgres) CreateNotification(notification domain.Notification) error {
	_, err := p.DB.Exec(
		"INSERT INTO notifications (id, user_id, title, body, level) VALUES ($1, $2, $3, $4, $5)",
		uuid.NewString(), notification.UserID, notification.Title, notification.Body, notification.Level,
	)
	if err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}

	return nil
}

// Notifications lists every user's notifications when userID is empty.
func (p *Postgres) Notifications(userID string, limit int) ([]domain.Notification, error) {
	query := "SELECT id, user_id, title, body, level, created_at FROM notifications"
	args := []any{limit}
	if userID != "" {
		query += " WHERE user_id = $2"
		args = append(args, userID)
	}
	query += " ORDER BY created_at DESC LIMIT $1"

	rows, err := p.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error fetching notifications: %w", err)
	}
	defer closeRows(rows)

	var notifications []domain.Notification
	for rows.Next() {
		var notification domain.Notification
		err := rows.Scan(
			&notification.ID, &notification.UserID, &notification.Title,
			&notification.Body, &notification.Level, &notification.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning notification: %w", err)
		}
		notifications = append(notifications, notification)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over notifications: %w", err)
	}

	return notifications, nil
}

func (p *Postgres) AppendAudit(entry domain.AuditEntry) error {
	_, err := p.DB.Exec(
		"INSERT INTO audit_log (id, actor_id, action, entity, entity_id, detail) VALUES ($1, $2, $3, $4, $5, $6)",
		uuid.NewString(), entry.ActorID, entry.Action, entry.Entity, entry.EntityID, entry.Detail,
	)
	if err != nil {
		return fmt.Errorf("error appending audit entry: %w", err)
	}

	return nil
}
