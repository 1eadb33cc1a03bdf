package domain

import "time"

// User is an account record held in the remote store. The password hash never
// leaves the server; timestamps are computed by the store.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Phone        *int64    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
	UpdatedAt    time.Time `json:"updatedAt,omitzero"`
}

// TokenClaims is the identity a verified bearer token carries.
type TokenClaims struct {
	UserID string
	Email  string
}
