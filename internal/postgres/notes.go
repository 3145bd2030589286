package postgres

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/bazaan/dashboarddev/internal/domain"
)

func (p *Postgres) CreateNote(note domain.Note) (*domain.Note, error) {
	note.ID = uuid.NewString()
	row := p.DB.QueryRow(
		`INSERT INTO notes (id, title, content, scope, project_id, author_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, title, content, scope, project_id, author_id, created_at, updated_at`,
		note.ID, note.Title, note.Content, note.Scope, note.ProjectID, note.AuthorID,
	)

	var created domain.Note
	err := row.Scan(
		&created.ID, &created.Title, &created.Content, &created.Scope,
		&created.ProjectID, &created.AuthorID, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}

	return &created, nil
}

// Notes returns the author's own notes plus shared ones, most recently
// updated first.
func (p *Postgres) Notes(authorID string, limit int) ([]domain.Note, error) {
	rows, err := p.DB.Query(
		`SELECT id, title, content, scope, project_id, author_id, created_at, updated_at
			FROM notes WHERE author_id = $1 OR scope = $2
			ORDER BY updated_at DESC LIMIT $3`,
		authorID, domain.NoteScopeShared, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("error fetching notes: %w", err)
	}
	defer closeRows(rows)

	var notes []domain.Note
	for rows.Next() {
		var note domain.Note
		err := rows.Scan(
			&note.ID, &note.Title, &note.Content, &note.Scope,
			&note.ProjectID, &note.AuthorID, &note.CreatedAt, &note.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning note: %w", err)
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over notes: %w", err)
	}

	return notes, nil
}
