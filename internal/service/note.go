package service

import "github.com/bazaan/dashboarddev/internal/domain"

const noteListLimit = 20

type noteRepository interface {
	CreateNote(note domain.Note) (*domain.Note, error)
	Notes(authorID string, limit int) ([]domain.Note, error)
}

type NoteService struct {
	repo noteRepository
}

func NewNoteService(repo noteRepository) *NoteService {
	return &NoteService{repo: repo}
}

func (s *NoteService) Create(note domain.Note) (*domain.Note, error) {
	if note.Scope == "" {
		note.Scope = domain.NoteScopePersonal
	}

	return s.repo.CreateNote(note)
}

func (s *NoteService) Notes(authorID string) ([]domain.Note, error) {
	return s.repo.Notes(authorID, noteListLimit)
}
