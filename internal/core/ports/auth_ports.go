package ports

import "github.com/portfolio-iw/api/internal/core/domain"

type TokenIssuer interface {
	Issue(userID, email string) (string, error)
	// Verify returns domain.ErrTokenExpired for an expired token and
	// domain.ErrInvalidToken for anything else that fails validation.
	Verify(token string) (*domain.TokenClaims, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Verify reports whether plain matches hash. A malformed hash is false,
	// never an error that could be mistaken for a match.
	Verify(plain, hash string) bool
}
