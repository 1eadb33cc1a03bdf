package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/portfolio-iw/api/internal/core/domain"
	"github.com/portfolio-iw/api/internal/core/ports"
)

type accountService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
}

func NewAccountService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer) ports.AccountService {
	return &accountService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

func (s *accountService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error) {
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return nil, "", domain.ErrMissingFields
	}

	existing, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up email: %w", err)
	}
	if existing != nil {
		return nil, "", domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}
	if phone, ok := NormalizePhone(input.Phone); ok {
		user.Phone = &phone
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrMissingCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up email: %w", err)
	}
	if user == nil || !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, current *domain.User, input ports.UpdateProfileInput) (*domain.User, error) {
	update := ports.UserUpdate{
		FirstName: current.FirstName,
		LastName:  current.LastName,
		Phone:     current.Phone,
	}
	if input.FirstName != nil && *input.FirstName != "" {
		update.FirstName = *input.FirstName
	}
	if input.LastName != nil && *input.LastName != "" {
		update.LastName = *input.LastName
	}
	if input.Phone != nil {
		// An unparseable phone keeps the previous value rather than storing
		// garbage.
		if phone, ok := NormalizePhone(*input.Phone); ok {
			update.Phone = &phone
		}
	}

	user, err := s.users.Update(ctx, current.ID, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// Delete removes the account record. Likes created by the user are left in
// place; they are only ever reached through (user, project) pair lookups, so
// orphaned rows are unreachable rather than harmful.
func (s *accountService) Delete(ctx context.Context, userID string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

var phoneSeparators = strings.NewReplacer(" ", "", "\t", "", "-", "", "(", "", ")", "")

// NormalizePhone strips separators and parses the remainder as a base-10
// number. It reports false for empty or unparseable input, in which case the
// field is omitted entirely.
func NormalizePhone(raw string) (int64, bool) {
	clean := phoneSeparators.Replace(raw)
	if clean == "" {
		return 0, false
	}

	n, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
