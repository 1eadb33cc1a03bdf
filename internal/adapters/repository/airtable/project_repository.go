package airtable

import (
	"context"
	"fmt"

	"github.com/portfolio-iw/api/internal/core/domain"
	"github.com/portfolio-iw/api/internal/core/ports"
)

type ProjectRepository struct {
	client *Client
	table  string
}

func NewProjectRepository(client *Client, table string) ports.ProjectRepository {
	return &ProjectRepository{client: client, table: table}
}

func (r *ProjectRepository) GetAll(ctx context.Context) ([]*domain.Project, error) {
	records, err := r.client.ListRecords(ctx, r.table, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	return toProjects(records), nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	record, err := r.client.GetRecord(ctx, r.table, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	if record == nil {
		return nil, domain.ErrProjectNotFound
	}
	return toProject(record), nil
}

func (r *ProjectRepository) Search(ctx context.Context, keywords string) ([]*domain.Project, error) {
	escaped := escapeFormulaValue(keywords)
	formula := fmt.Sprintf(`OR(SEARCH("%s", {title}), SEARCH("%s", {description}))`, escaped, escaped)

	records, err := r.client.ListRecords(ctx, r.table, formula)
	if err != nil {
		return nil, fmt.Errorf("failed to search projects: %w", err)
	}
	return toProjects(records), nil
}

func toProjects(records []*Record) []*domain.Project {
	projects := make([]*domain.Project, 0, len(records))
	for _, record := range records {
		projects = append(projects, toProject(record))
	}
	return projects
}

func toProject(record *Record) *domain.Project {
	project := &domain.Project{
		ID:          record.ID,
		Title:       stringField(record.Fields, "title"),
		Description: stringField(record.Fields, "description"),
		CreatedAt:   timeField(record.Fields, "createdAt"),
		// The like count is the size of the linked-like set, not a stored
		// counter.
		Likes: len(listField(record.Fields, "Like")),
	}
	if n, ok := numberField(record.Fields, "id"); ok {
		project.ExternalID = int64(n)
	}
	if attachments := listField(record.Fields, "picture"); len(attachments) > 0 {
		if attachment, ok := attachments[0].(map[string]any); ok {
			if url, ok := attachment["url"].(string); ok {
				project.Picture = &url
			}
		}
	}
	return project
}
