package ports

import (
	"context"

	"github.com/portfolio-iw/api/internal/core/domain"
)

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// UpdateProfileInput uses nil to mean "keep the previous value". The merge
// against the current profile happens in the service, not the transport.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	UpdateProfile(ctx context.Context, current *domain.User, input UpdateProfileInput) (*domain.User, error)
	Delete(ctx context.Context, userID string) error
}
