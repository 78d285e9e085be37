package httpx

import (
	"net/http"

	"github.com/lodestone-games/studio-site/internal/data"
	"github.com/lodestone-games/studio-site/internal/domain/model"
	"github.com/lodestone-games/studio-site/internal/service"
)

// ContactHandlers provides HTTP handlers for contact form operations.
type ContactHandlers struct {
	Svc *service.ContactService
}

// Submit handles public contact form submissions.
// POST /api/contact.
func (h *ContactHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	// Value decode: a literal null body fails validation rather than
	// reaching the repo as nil.
	var req model.CreateContactMessageRequest
	if !readJSON(w, r, &req) {
		return
	}

	msg, err := h.Svc.Submit(r.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			writeErr(w, http.StatusBadRequest, "validation_failed", err)
			return
		}
		writeErr(w, http.StatusInternalServerError, "submit_failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

// List handles the admin inbox listing.
// GET /api/admin/contact?limit=&offset=.
func (h *ContactHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, 200)
	msgs, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "list_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

// Delete handles removal of a contact message.
// DELETE /api/admin/contact/{id}.
func (h *ContactHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "delete_failed", err)
		return
	}
	if !ok {
		writeErr(w, http.StatusNotFound, "not_found", data.ErrContactNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
