package postgres

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/bazaan/dashboarddev/internal/domain"
)

func (p *Postgres) CreateReport(report domain.Report) (*domain.Report, error) {
	report.ID = uuid.NewString()
	row := p.DB.QueryRow(
		`INSERT INTO reports (id, title, body, type, author_id) VALUES ($1, $2, $3, $4, $5)
			RETURNING id, title, body, type, author_id, created_at`,
		report.ID, report.Title, report.Body, report.Type, report.AuthorID,
	)

	var created domain.Report
	err := row.Scan(&created.ID, &created.Title, &created.Body, &created.Type, &created.AuthorID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating report: %w", err)
	}

	return &created, nil
}

// Reports lists every report when authorID is empty, newest first.
func (p *Postgres) Reports(authorID string, limit int) ([]domain.Report, error) {
	query := `SELECT r.id, r.title, r.body, r.type, r.author_id, u.name, r.created_at
		FROM reports r JOIN users u ON u.id = r.author_id`
	args := []any{limit}
	if authorID != "" {
		query += " WHERE r.author_id = $2"
		args = append(args, authorID)
	}
	query += " ORDER BY r.created_at DESC LIMIT $1"

	rows, err := p.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error fetching reports: %w", err)
	}
	defer closeRows(rows)

	var reports []domain.Report
	for rows.Next() {
		var report domain.Report
		err := rows.Scan(
			&report.ID, &report.Title, &report.Body, &report.Type,
			&report.AuthorID, &report.AuthorName, &report.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning report: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over reports: %w", err)
	}

	return reports, nil
}
