package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"jobi-backend/internal/domain"
)

func (h *Handler) handleAdminListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.registrations.ListAll(r.Context())
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.AdminStats(r.Context())
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleAdminBulkEmail(w http.ResponseWriter, r *http.Request) {
	report, err := h.dispatcher.SendTeaserBroadcast(r.Context())
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   report.SuccessCount,
		"report":  report,
	})
}

func (h *Handler) handleAdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.registrations.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, envelope{
				Success: false,
				Message: "Inscription introuvable",
			})
			return
		}
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
