package ports

import (
	"context"

	"github.com/portfolio-iw/api/internal/core/domain"
)

type ProjectRepository interface {
	GetAll(ctx context.Context) ([]*domain.Project, error)
	// GetByID looks a project up by its store record id and returns
	// domain.ErrProjectNotFound when absent.
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Search(ctx context.Context, keywords string) ([]*domain.Project, error)
}

type ProjectService interface {
	// List returns all projects, annotated with the viewer's like flags when
	// viewer is non-nil.
	List(ctx context.Context, viewer *domain.User) ([]*domain.Project, error)
	Get(ctx context.Context, id string, viewer *domain.User) (*domain.Project, error)
	Search(ctx context.Context, keywords string, viewer *domain.User) ([]*domain.Project, error)
}
