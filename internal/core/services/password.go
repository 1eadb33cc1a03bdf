package services

import (
	"github.com/portfolio-iw/api/internal/core/ports"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type bcryptHasher struct {
	cost int
}

func NewBcryptHasher() ports.PasswordHasher {
	return &bcryptHasher{cost: bcryptCost}
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *bcryptHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
