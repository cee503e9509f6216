package service

import (
	"context"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type ProjectService struct {
	projectRepository ports.ProjectRepository
}

func NewProjectService(projectRepository ports.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepository: projectRepository}
}

func (s *ProjectService) ListProjects(ctx context.Context, principalID int64) ([]domain.Project, error) {
	return s.projectRepository.FindAllByOwner(ctx, principalID)
}

func (s *ProjectService) CreateProject(ctx context.Context, input domain.CreateProjectInput, principalID int64) (*domain.Project, error) {
	return s.projectRepository.CreateProject(ctx, input, principalID)
}

// GetOwnedProject loads a project and asserts the principal owns it. Every
// task operation resolves its parent project through this single check; tasks
// are never owned directly.
func (s *ProjectService) GetOwnedProject(ctx context.Context, projectID, principalID int64) (*domain.Project, error) {
	project, err := s.projectRepository.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}
	if project.OwnerID != principalID {
		return nil, domain.ErrProjectForbidden
	}
	return project, nil
}

var _ ports.ProjectService = (*ProjectService)(nil)
