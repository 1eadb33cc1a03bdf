package ports

import (
	"context"

	"github.com/portfolio-iw/api/internal/core/domain"
)

// UserUpdate carries the already-merged profile values written back to the
// store. A nil Phone leaves the stored phone untouched.
type UserUpdate struct {
	FirstName string
	LastName  string
	Phone     *int64
}

type UserRepository interface {
	// GetByEmail returns (nil, nil) when no user matches. The lookup is
	// case-sensitive, matching the store's equality semantics.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetByID returns (nil, nil) when the record no longer exists.
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// Create persists the user and fills in the store-assigned ID and
	// timestamps.
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
