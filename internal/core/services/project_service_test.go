package services

import (
	"context"
	"testing"

	"github.com/portfolio-iw/api/internal/adapters/repository/memory"
	"github.com/portfolio-iw/api/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProjects() *memory.ProjectRepository {
	return memory.NewProjectRepository(
		&domain.Project{ID: "recProj1", ExternalID: 42, Title: "Weather app", Description: "A weather dashboard"},
		&domain.Project{ID: "recProj2", ExternalID: 43, Title: "Chat bot", Description: "A support bot"},
	)
}

func TestProjectService_ListAnonymousHasNoLikeFlag(t *testing.T) {
	ctx := context.Background()
	projects := NewProjectService(testProjects(), NewLikeService(memory.NewLikeRepository()))

	list, err := projects.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, project := range list {
		assert.Nil(t, project.IsLiked)
	}
}

func TestProjectService_ListAnnotatesViewerLikes(t *testing.T) {
	ctx := context.Background()
	likes := NewLikeService(memory.NewLikeRepository())
	projects := NewProjectService(testProjects(), likes)

	viewer := &domain.User{ID: "recUser1"}
	_, err := likes.Add(ctx, viewer.ID, "42")
	require.NoError(t, err)

	list, err := projects.List(ctx, viewer)
	require.NoError(t, err)
	require.Len(t, list, 2)

	byExternalID := map[int64]*domain.Project{}
	for _, project := range list {
		byExternalID[project.ExternalID] = project
	}

	require.NotNil(t, byExternalID[42].IsLiked)
	assert.True(t, *byExternalID[42].IsLiked)
	require.NotNil(t, byExternalID[43].IsLiked)
	assert.False(t, *byExternalID[43].IsLiked)
}

func TestProjectService_GetUnknownProject(t *testing.T) {
	projects := NewProjectService(testProjects(), NewLikeService(memory.NewLikeRepository()))

	_, err := projects.Get(context.Background(), "recMissing", nil)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestProjectService_Search(t *testing.T) {
	ctx := context.Background()
	projects := NewProjectService(testProjects(), NewLikeService(memory.NewLikeRepository()))

	results, err := projects.Search(ctx, "Weather", nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "recProj1", results[0].ID)
}
