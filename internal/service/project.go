package service

import "github.com/bazaan/dashboarddev/internal/domain"

type projectRepository interface {
	CreateProject(project domain.Project) (*domain.Project, error)
	Project(id string) (*domain.Project, error)
	Projects() ([]domain.Project, error)
	UpdateProject(project domain.Project) (*domain.Project, error)
	DeleteProject(id string) error
	UpdateProjectOrder(projectIDs []string) error
}

type ProjectService struct {
	repo  projectRepository
	audit auditRepository
}

func NewProjectService(repo projectRepository, audit auditRepository) *ProjectService {
	return &ProjectService{
		repo:  repo,
		audit: audit,
	}
}

func (s *ProjectService) Create(actorID, actorRole string, project domain.Project) (*domain.Project, error) {
	if actorRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	if project.Priority == "" {
		project.Priority = domain.PriorityMedium
	}

	created, err := s.repo.CreateProject(project)
	if err != nil {
		return nil, err
	}

	appendAudit(s.audit, domain.AuditEntry{
		ActorID:  actorID,
		Action:   domain.AuditCreate,
		Entity:   "PROJECT",
		EntityID: created.ID,
	})

	return created, nil
}

func (s *ProjectService) Projects() ([]domain.Project, error) {
	return s.repo.Projects()
}

func (s *ProjectService) Project(id string) (*domain.Project, error) {
	return s.repo.Project(id)
}

func (s *ProjectService) Update(actorID, actorRole string, project domain.Project) (*domain.Project, error) {
	if actorRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	updated, err := s.repo.UpdateProject(project)
	if err != nil {
		return nil, err
	}

	appendAudit(s.audit, domain.AuditEntry{
		ActorID:  actorID,
		Action:   domain.AuditUpdate,
		Entity:   "PROJECT",
		EntityID: project.ID,
	})

	return updated, nil
}

func (s *ProjectService) Delete(actorID, actorRole, id string) error {
	if actorRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if err := s.repo.DeleteProject(id); err != nil {
		return err
	}

	appendAudit(s.audit, domain.AuditEntry{
		ActorID:  actorID,
		Action:   domain.AuditDelete,
		Entity:   "PROJECT",
		EntityID: id,
	})

	return nil
}

func (s *ProjectService) Reorder(actorRole string, projectIDs []string) error {
	if actorRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	return s.repo.UpdateProjectOrder(projectIDs)
}
