package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func NewHandler(
	auth *AuthHandler,
	users *UserHandler,
	projects *ProjectHandler,
	authMw *AuthMiddleware,
	log *zap.Logger,
	corsOrigins []string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	r.Get("/", index)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", auth.Register)
			r.Post("/login", auth.Login)
		})

		r.Route("/user/profile", func(r chi.Router) {
			r.Use(authMw.Require)
			r.Get("/", users.GetProfile)
			r.Put("/", users.UpdateProfile)
			r.Delete("/", users.DeleteProfile)
		})

		r.Route("/projects", func(r chi.Router) {
			r.With(authMw.Optional).Get("/", projects.List)
			r.With(authMw.Optional).Get("/search/{keywords}", projects.Search)
			r.With(authMw.Optional).Get("/{id}", projects.Get)
			r.With(authMw.Require).Post("/{id}/like", projects.Like)
			r.With(authMw.Require).Delete("/{id}/like", projects.Unlike)
		})
	})

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"message":   "Portfolio IW API is running!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func index(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Welcome to Portfolio IW API",
		"version": "1.0.0",
		"endpoints": map[string]any{
			"health":   "/api/health",
			"projects": "/api/projects",
			"auth": map[string]string{
				"register": "POST /api/auth/register",
				"login":    "POST /api/auth/login",
			},
			"user": map[string]string{
				"profile": "/api/user/profile",
			},
		},
	})
}
