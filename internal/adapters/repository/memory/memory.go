// Package memory holds in-memory implementations of the store repositories,
// used as fakes by the service and handler tests.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/portfolio-iw/api/internal/core/domain"
	"github.com/portfolio-iw/api/internal/core/ports"
)

// newRecordID mimics the store's opaque "rec..." identifiers.
func newRecordID() string {
	return "rec" + strings.ReplaceAll(uuid.NewString(), "-", "")[:14]
}

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = newRecordID()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *UserRepository) Update(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	user.FirstName = update.FirstName
	user.LastName = update.LastName
	if update.Phone != nil {
		user.Phone = update.Phone
	}
	user.UpdatedAt = time.Now().UTC()

	clone := *user
	return &clone, nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, id)
	return nil
}

type ProjectRepository struct {
	mu       sync.RWMutex
	projects []*domain.Project
}

func NewProjectRepository(projects ...*domain.Project) *ProjectRepository {
	return &ProjectRepository{projects: projects}
}

func (r *ProjectRepository) GetAll(_ context.Context) ([]*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Project, 0, len(r.projects))
	for _, project := range r.projects {
		clone := *project
		out = append(out, &clone)
	}
	return out, nil
}

func (r *ProjectRepository) GetByID(_ context.Context, id string) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, project := range r.projects {
		if project.ID == id {
			clone := *project
			return &clone, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r *ProjectRepository) Search(_ context.Context, keywords string) ([]*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Project
	for _, project := range r.projects {
		if strings.Contains(project.Title, keywords) || strings.Contains(project.Description, keywords) {
			clone := *project
			out = append(out, &clone)
		}
	}
	return out, nil
}

type LikeRepository struct {
	mu    sync.RWMutex
	likes map[string]*domain.Like
}

func NewLikeRepository() *LikeRepository {
	return &LikeRepository{likes: make(map[string]*domain.Like)}
}

func (r *LikeRepository) Create(_ context.Context, like *domain.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	like.ID = newRecordID()
	clone := *like
	r.likes[like.ID] = &clone
	return nil
}

func (r *LikeRepository) FindByUserAndProject(_ context.Context, userID, projectExternalID string) (*domain.Like, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, like := range r.likes {
		if like.UserID == userID && like.ProjectExternalID == projectExternalID {
			clone := *like
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *LikeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.likes, id)
	return nil
}

// Count reports how many likes exist, duplicates included. Test helper.
func (r *LikeRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.likes)
}
