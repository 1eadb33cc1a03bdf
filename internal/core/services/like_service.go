package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/portfolio-iw/api/internal/core/domain"
	"github.com/portfolio-iw/api/internal/core/ports"
)

// likeService enforces the at-most-one-like-per-(user, project) invariant. The
// backing store offers no uniqueness constraint or transaction, so toggles for
// the same pair are serialized through a per-pair mutex. This only protects
// against races within a single process instance.
type likeService struct {
	likes ports.LikeRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLikeService(likes ports.LikeRepository) ports.LikeService {
	return &likeService{
		likes: likes,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *likeService) pairLock(userID, projectExternalID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := userID + "/" + projectExternalID
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

func (s *likeService) Add(ctx context.Context, userID, projectExternalID string) (string, error) {
	lock := s.pairLock(userID, projectExternalID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.likes.FindByUserAndProject(ctx, userID, projectExternalID)
	if err != nil {
		return "", fmt.Errorf("failed to check existing like: %w", err)
	}
	if existing != nil {
		return "", domain.ErrAlreadyLiked
	}

	like := &domain.Like{
		UserID:            userID,
		ProjectExternalID: projectExternalID,
		CreatedAt:         time.Now().UTC().Truncate(24 * time.Hour),
	}
	if err := s.likes.Create(ctx, like); err != nil {
		return "", fmt.Errorf("failed to create like: %w", err)
	}

	return like.ID, nil
}

func (s *likeService) Remove(ctx context.Context, userID, projectExternalID string) error {
	lock := s.pairLock(userID, projectExternalID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.likes.FindByUserAndProject(ctx, userID, projectExternalID)
	if err != nil {
		return fmt.Errorf("failed to look up like: %w", err)
	}
	if existing == nil {
		return domain.ErrLikeNotFound
	}

	if err := s.likes.Delete(ctx, existing.ID); err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func (s *likeService) HasLiked(ctx context.Context, userID, projectExternalID string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	existing, err := s.likes.FindByUserAndProject(ctx, userID, projectExternalID)
	if err != nil {
		return false, fmt.Errorf("failed to check like status: %w", err)
	}
	return existing != nil, nil
}
