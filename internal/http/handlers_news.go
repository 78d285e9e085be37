package httpx

import (
	"errors"
	"net/http"

	"github.com/lodestone-games/studio-site/internal/data"
	"github.com/lodestone-games/studio-site/internal/domain/model"
	"github.com/lodestone-games/studio-site/internal/service"
)

// NewsHandlers provides HTTP handlers for news post operations.
type NewsHandlers struct {
	Svc *service.NewsService
}

// ListPublished handles the public news listing.
// GET /api/news?limit=&offset=.
func (h *NewsHandlers) ListPublished(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 20, 100)
	posts, err := h.Svc.ListPublished(r.Context(), limit, offset)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "list_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// GetBySlug handles the public single-post fetch.
// GET /api/news/{slug}. Drafts are not exposed here.
func (h *NewsHandlers) GetBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.Svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		h.writeReadErr(w, err)
		return
	}
	if !post.Published {
		writeErr(w, http.StatusNotFound, "not_found", data.ErrNewsNotFound)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// List handles the admin listing including drafts.
// GET /api/admin/news?limit=&offset=.
func (h *NewsHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 20, 100)
	posts, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "list_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// Get handles the admin single-post fetch by ID.
// GET /api/admin/news/{id}.
func (h *NewsHandlers) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeReadErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// Create handles news post creation.
// POST /api/admin/news.
func (h *NewsHandlers) Create(w http.ResponseWriter, r *http.Request) {
	// Decode into a value so a literal null body becomes a zero request,
	// which fails validation instead of reaching the repo as nil.
	var req model.CreateNewsPostRequest
	if !readJSON(w, r, &req) {
		return
	}

	post, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		h.writeWriteErr(w, err, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// Update handles partial news post updates.
// PUT /api/admin/news/{id}.
func (h *NewsHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateNewsPostRequest
	if !readJSON(w, r, &req) {
		return
	}

	post, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		h.writeWriteErr(w, err, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// Delete handles news post deletion.
// DELETE /api/admin/news/{id}.
func (h *NewsHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "delete_failed", err)
		return
	}
	if !ok {
		writeErr(w, http.StatusNotFound, "not_found", data.ErrNewsNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *NewsHandlers) writeReadErr(w http.ResponseWriter, err error) {
	if errors.Is(err, data.ErrNewsNotFound) {
		writeErr(w, http.StatusNotFound, "not_found", err)
		return
	}
	writeErr(w, http.StatusInternalServerError, "get_failed", err)
}

func (h *NewsHandlers) writeWriteErr(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, data.ErrNewsNotFound):
		writeErr(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, data.ErrNewsSlugExists):
		writeErr(w, http.StatusConflict, "slug_conflict", err)
	case isValidationError(err):
		writeErr(w, http.StatusBadRequest, "validation_failed", err)
	default:
		writeErr(w, http.StatusInternalServerError, fallback, err)
	}
}
