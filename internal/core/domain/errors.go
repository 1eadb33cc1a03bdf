package domain

import "errors"

var (
	ErrMissingFields      = errors.New("email, password, firstName and lastName are required")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrEmailTaken         = errors.New("user already exists with this email")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrAlreadyLiked    = errors.New("like already exists")
	ErrLikeNotFound    = errors.New("like not found")

	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")

	ErrStoreUnavailable = errors.New("record store unavailable")
)
