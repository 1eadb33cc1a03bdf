package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/portfolio-iw/api/internal/core/domain"
	"github.com/portfolio-iw/api/internal/core/ports"
	"go.uber.org/zap"
)

type ProjectHandler struct {
	projects ports.ProjectService
	likes    ports.LikeService
	log      *zap.Logger
}

func NewProjectHandler(projects ports.ProjectService, likes ports.LikeService, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, likes: likes, log: log}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	viewer, _ := UserFromContext(r.Context())

	projects, err := h.projects.List(r.Context(), viewer)
	if err != nil {
		h.log.Error("project listing failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}

	respondJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	viewer, _ := UserFromContext(r.Context())

	project, err := h.projects.Get(r.Context(), chi.URLParam(r, "id"), viewer)
	if err != nil {
		if !errors.Is(err, domain.ErrProjectNotFound) {
			h.log.Error("project fetch failed", zap.Error(err))
		}
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Search(w http.ResponseWriter, r *http.Request) {
	viewer, _ := UserFromContext(r.Context())

	projects, err := h.projects.Search(r.Context(), chi.URLParam(r, "keywords"), viewer)
	if err != nil {
		h.log.Error("project search failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to search projects")
		return
	}

	respondJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Like(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	likeID, err := h.likes.Add(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyLiked) {
			respondError(w, http.StatusBadRequest, "You have already liked this project")
			return
		}
		h.log.Error("like failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to like project")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Project liked successfully",
		"success": true,
		"likeId":  likeID,
	})
}

func (h *ProjectHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	if err := h.likes.Remove(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, domain.ErrLikeNotFound) {
			respondError(w, http.StatusNotFound, "Like not found")
			return
		}
		h.log.Error("unlike failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to remove like")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"message": "Like removed successfully"})
}
