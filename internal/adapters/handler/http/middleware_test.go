package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/portfolio-iw/api/internal/adapters/repository/memory"
	"github.com/portfolio-iw/api/internal/core/domain"
	"github.com/portfolio-iw/api/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthMiddleware(t *testing.T, ttl time.Duration) (*AuthMiddleware, *domain.User, string) {
	t.Helper()

	users := memory.NewUserRepository()
	user := &domain.User{Email: "a@x.com", FirstName: "A", LastName: "B"}
	require.NoError(t, users.Create(context.Background(), user))

	tokens := services.NewTokenService([]byte("test-secret"), ttl)
	token, err := tokens.Issue(user.ID, user.Email)
	require.NoError(t, err)

	return NewAuthMiddleware(tokens, users, zap.NewNop()), user, token
}

func identityEcho(t *testing.T, captured **domain.User) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := UserFromContext(r.Context()); ok {
			*captured = user
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequire_ValidToken(t *testing.T) {
	mw, user, token := newTestAuthMiddleware(t, 24*time.Hour)

	var seen *domain.User
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.Require(identityEcho(t, &seen)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, user.ID, seen.ID)
}

func TestRequire_MissingToken(t *testing.T) {
	mw, _, _ := newTestAuthMiddleware(t, 24*time.Hour)

	var seen *domain.User
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	mw.Require(identityEcho(t, &seen)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No token provided")
	assert.Nil(t, seen)
}

func TestRequire_InvalidToken(t *testing.T) {
	mw, _, _ := newTestAuthMiddleware(t, 24*time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	var seen *domain.User
	mw.Require(identityEcho(t, &seen)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestRequire_ExpiredTokenHasDistinctMessage(t *testing.T) {
	mw, _, token := newTestAuthMiddleware(t, -time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	var seen *domain.User
	mw.Require(identityEcho(t, &seen)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token expired")
}

func TestRequire_DeletedUser(t *testing.T) {
	users := memory.NewUserRepository()
	tokens := services.NewTokenService([]byte("test-secret"), 24*time.Hour)
	mw := NewAuthMiddleware(tokens, users, zap.NewNop())

	// Token for an identity that no longer resolves.
	token, err := tokens.Issue("recGone", "gone@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	var seen *domain.User
	mw.Require(identityEcho(t, &seen)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

func TestOptional_NeverBlocks(t *testing.T) {
	mw, _, expired := newTestAuthMiddleware(t, -time.Minute)

	headers := map[string]string{
		"no token":     "",
		"garbage":      "Bearer garbage",
		"expired":      "Bearer " + expired,
		"wrong scheme": "Basic abc123",
	}
	for name, header := range headers {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()

			var seen *domain.User
			mw.Optional(identityEcho(t, &seen)).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Nil(t, seen)
		})
	}
}

func TestOptional_AttachesValidIdentity(t *testing.T) {
	mw, user, token := newTestAuthMiddleware(t, 24*time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	var seen *domain.User
	mw.Optional(identityEcho(t, &seen)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, user.ID, seen.ID)
}
