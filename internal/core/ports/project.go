package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type ProjectRepository interface {
	// All reads return projects with task counts aggregated from live task rows.
	FindAllByOwner(ctx context.Context, ownerID int64) ([]domain.Project, error)
	// FindByID returns (nil, nil) when the project does not exist.
	FindByID(ctx context.Context, projectID int64) (*domain.Project, error)
	CreateProject(ctx context.Context, input domain.CreateProjectInput, ownerID int64) (*domain.Project, error)
}

type ProjectService interface {
	ListProjects(ctx context.Context, principalID int64) ([]domain.Project, error)
	CreateProject(ctx context.Context, input domain.CreateProjectInput, principalID int64) (*domain.Project, error)
	// GetOwnedProject is the ownership gate every task operation goes through.
	GetOwnedProject(ctx context.Context, projectID, principalID int64) (*domain.Project, error)
}
