package services

import (
	"context"
	"strconv"

	"github.com/portfolio-iw/api/internal/core/domain"
	"github.com/portfolio-iw/api/internal/core/ports"
)

type projectService struct {
	projects ports.ProjectRepository
	likes    ports.LikeService
}

func NewProjectService(projects ports.ProjectRepository, likes ports.LikeService) ports.ProjectService {
	return &projectService{
		projects: projects,
		likes:    likes,
	}
}

func (s *projectService) List(ctx context.Context, viewer *domain.User) ([]*domain.Project, error) {
	projects, err := s.projects.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.annotate(ctx, projects, viewer); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *projectService) Get(ctx context.Context, id string, viewer *domain.User) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.annotate(ctx, []*domain.Project{project}, viewer); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Search(ctx context.Context, keywords string, viewer *domain.User) ([]*domain.Project, error) {
	projects, err := s.projects.Search(ctx, keywords)
	if err != nil {
		return nil, err
	}

	if err := s.annotate(ctx, projects, viewer); err != nil {
		return nil, err
	}
	return projects, nil
}

// annotate fills in the viewer's like flag on each project. Anonymous viewers
// get no flag at all rather than a false one.
func (s *projectService) annotate(ctx context.Context, projects []*domain.Project, viewer *domain.User) error {
	if viewer == nil {
		return nil
	}

	for _, project := range projects {
		liked, err := s.likes.HasLiked(ctx, viewer.ID, strconv.FormatInt(project.ExternalID, 10))
		if err != nil {
			return err
		}
		project.IsLiked = &liked
	}
	return nil
}
