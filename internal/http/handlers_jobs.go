package httpx

import (
	"errors"
	"net/http"

	"github.com/lodestone-games/studio-site/internal/data"
	"github.com/lodestone-games/studio-site/internal/domain/model"
	"github.com/lodestone-games/studio-site/internal/service"
)

// JobPostingHandlers provides HTTP handlers for job posting operations.
type JobPostingHandlers struct {
	Svc *service.JobPostingService
}

// ListOpen handles the public listing of open positions.
// GET /api/jobs?limit=&offset=.
func (h *JobPostingHandlers) ListOpen(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 20, 100)
	postings, err := h.Svc.ListOpen(r.Context(), limit, offset)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "list_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, postings)
}

// GetBySlug handles the public single-posting fetch.
// GET /api/jobs/{slug}. Closed positions are not exposed here.
func (h *JobPostingHandlers) GetBySlug(w http.ResponseWriter, r *http.Request) {
	posting, err := h.Svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		h.writeReadErr(w, err)
		return
	}
	if !posting.Open {
		writeErr(w, http.StatusNotFound, "not_found", data.ErrJobPostingNotFound)
		return
	}
	writeJSON(w, http.StatusOK, posting)
}

// List handles the admin listing including closed positions.
// GET /api/admin/jobs?limit=&offset=.
func (h *JobPostingHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 20, 100)
	postings, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "list_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, postings)
}

// Create handles job posting creation.
// POST /api/admin/jobs.
func (h *JobPostingHandlers) Create(w http.ResponseWriter, r *http.Request) {
	// Value decode: a literal null body fails validation rather than
	// reaching the repo as nil.
	var req model.CreateJobPostingRequest
	if !readJSON(w, r, &req) {
		return
	}

	posting, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		h.writeWriteErr(w, err, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, posting)
}

// Update handles partial job posting updates.
// PUT /api/admin/jobs/{id}.
func (h *JobPostingHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateJobPostingRequest
	if !readJSON(w, r, &req) {
		return
	}

	posting, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		h.writeWriteErr(w, err, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, posting)
}

// Delete handles job posting deletion.
// DELETE /api/admin/jobs/{id}.
func (h *JobPostingHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "delete_failed", err)
		return
	}
	if !ok {
		writeErr(w, http.StatusNotFound, "not_found", data.ErrJobPostingNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *JobPostingHandlers) writeReadErr(w http.ResponseWriter, err error) {
	if errors.Is(err, data.ErrJobPostingNotFound) {
		writeErr(w, http.StatusNotFound, "not_found", err)
		return
	}
	writeErr(w, http.StatusInternalServerError, "get_failed", err)
}

func (h *JobPostingHandlers) writeWriteErr(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, data.ErrJobPostingNotFound):
		writeErr(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, data.ErrJobPostingSlugExists):
		writeErr(w, http.StatusConflict, "slug_conflict", err)
	case isValidationError(err):
		writeErr(w, http.StatusBadRequest, "validation_failed", err)
	default:
		writeErr(w, http.StatusInternalServerError, fallback, err)
	}
}
