package ports

import (
	"context"

	"github.com/portfolio-iw/api/internal/core/domain"
)

type LikeRepository interface {
	// Create persists the like and fills in the store-assigned ID.
	Create(ctx context.Context, like *domain.Like) error
	// FindByUserAndProject returns (nil, nil) when the pair has no like.
	FindByUserAndProject(ctx context.Context, userID, projectExternalID string) (*domain.Like, error)
	Delete(ctx context.Context, id string) error
}

type LikeService interface {
	// Add returns the new like's id, or domain.ErrAlreadyLiked when the pair
	// is already in the liked state.
	Add(ctx context.Context, userID, projectExternalID string) (string, error)
	// Remove returns domain.ErrLikeNotFound when there is nothing to remove.
	Remove(ctx context.Context, userID, projectExternalID string) error
	// HasLiked reports whether the pair is in the liked state. An empty
	// userID (anonymous viewer) is false, not an error.
	HasLiked(ctx context.Context, userID, projectExternalID string) (bool, error)
}
