package airtable

import (
	"context"
	"fmt"

	"github.com/portfolio-iw/api/internal/core/domain"
	"github.com/portfolio-iw/api/internal/core/ports"
)

type LikeRepository struct {
	client *Client
	table  string
}

func NewLikeRepository(client *Client, table string) ports.LikeRepository {
	return &LikeRepository{client: client, table: table}
}

func (r *LikeRepository) Create(ctx context.Context, like *domain.Like) error {
	fields := map[string]any{
		// The user column links to the Users table and takes record ids; the
		// project column holds the external id as plain text.
		"user":      []string{like.UserID},
		"project":   like.ProjectExternalID,
		"createdAt": like.CreatedAt.Format("2006-01-02"),
	}

	record, err := r.client.CreateRecord(ctx, r.table, fields)
	if err != nil {
		return fmt.Errorf("failed to create like: %w", err)
	}

	like.ID = record.ID
	return nil
}

func (r *LikeRepository) FindByUserAndProject(ctx context.Context, userID, projectExternalID string) (*domain.Like, error) {
	formula := fmt.Sprintf(`AND({user} = "%s", {project} = "%s")`,
		escapeFormulaValue(userID), escapeFormulaValue(projectExternalID))

	records, err := r.client.ListRecords(ctx, r.table, formula)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch like: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return toLike(records[0]), nil
}

func (r *LikeRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.DeleteRecord(ctx, r.table, id); err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func toLike(record *Record) *domain.Like {
	like := &domain.Like{
		ID:                record.ID,
		ProjectExternalID: stringField(record.Fields, "project"),
		CreatedAt:         timeField(record.Fields, "createdAt"),
	}
	if users := listField(record.Fields, "user"); len(users) > 0 {
		like.UserID, _ = users[0].(string)
	}
	return like
}
