package airtable

import (
	"context"
	"fmt"

	"github.com/portfolio-iw/api/internal/core/domain"
	"github.com/portfolio-iw/api/internal/core/ports"
)

type UserRepository struct {
	client *Client
	table  string
}

func NewUserRepository(client *Client, table string) ports.UserRepository {
	return &UserRepository{client: client, table: table}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	formula := fmt.Sprintf(`{email} = "%s"`, escapeFormulaValue(email))
	records, err := r.client.ListRecords(ctx, r.table, formula)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return toUser(records[0]), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	record, err := r.client.GetRecord(ctx, r.table, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user by id: %w", err)
	}
	if record == nil {
		return nil, nil
	}
	return toUser(record), nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	// createdAt and updatedAt are computed by the store and never written.
	fields := map[string]any{
		"email":        user.Email,
		"passwordHash": user.PasswordHash,
		"firstName":    user.FirstName,
		"lastName":     user.LastName,
	}
	if user.Phone != nil {
		fields["phone"] = *user.Phone
	}

	record, err := r.client.CreateRecord(ctx, r.table, fields)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = record.ID
	user.CreatedAt = timeField(record.Fields, "createdAt")
	user.UpdatedAt = timeField(record.Fields, "updatedAt")
	return nil
}

func (r *UserRepository) Update(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	fields := map[string]any{
		"firstName": update.FirstName,
		"lastName":  update.LastName,
	}
	// A patch leaves omitted fields alone, so a nil phone keeps the stored
	// value.
	if update.Phone != nil {
		fields["phone"] = *update.Phone
	}

	record, err := r.client.UpdateRecord(ctx, r.table, id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return toUser(record), nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.DeleteRecord(ctx, r.table, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func toUser(record *Record) *domain.User {
	user := &domain.User{
		ID:           record.ID,
		Email:        stringField(record.Fields, "email"),
		PasswordHash: stringField(record.Fields, "passwordHash"),
		FirstName:    stringField(record.Fields, "firstName"),
		LastName:     stringField(record.Fields, "lastName"),
		CreatedAt:    timeField(record.Fields, "createdAt"),
		UpdatedAt:    timeField(record.Fields, "updatedAt"),
	}
	if n, ok := numberField(record.Fields, "phone"); ok {
		phone := int64(n)
		user.Phone = &phone
	}
	return user
}
