package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"jobi-backend/internal/domain"
	"jobi-backend/internal/service"
)

type registerRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Type         string `json:"type"`
	Neighborhood string `json:"neighborhood"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{
			Success: false,
			Message: "Corps de requête invalide",
		})
		return
	}

	result, err := h.registrations.Register(r.Context(), service.RegisterInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Type:         req.Type,
		Neighborhood: req.Neighborhood,
	})
	if err != nil {
		var dup *domain.DuplicateError
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeJSON(w, http.StatusBadRequest, envelope{
				Success: false,
				Message: "Nom, téléphone et type sont obligatoires",
			})
		case errors.As(err, &dup):
			writeJSON(w, http.StatusConflict, envelope{
				Success: false,
				Message: "Ce numéro de téléphone est déjà inscrit !",
				Data: map[string]any{
					"name":         dup.Name,
					"registeredAt": dup.RegisteredAt,
				},
			})
		default:
			writeServerError(w, r, err)
		}
		return
	}

	reg := result.Registration
	writeJSON(w, http.StatusCreated, envelope{
		Success: true,
		Message: fmt.Sprintf("🎉 Inscription réussie ! Bienvenue dans JOBI, %s !", reg.Name),
		Data: map[string]any{
			"id":           reg.ID.Hex(),
			"name":         reg.Name,
			"type":         reg.Type,
			"neighborhood": reg.Neighborhood,
			"emailSent":    result.WelcomeEmailSent,
			"registeredAt": reg.RegisteredAt,
		},
	})
}

func (h *Handler) handlePublicStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.PublicStats(r.Context())
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: stats})
}

type notifyLaunchRequest struct {
	Message string `json:"message"`
}

func (h *Handler) handleNotifyLaunch(w http.ResponseWriter, r *http.Request) {
	var req notifyLaunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, envelope{
			Success: false,
			Message: "Message de notification requis",
		})
		return
	}

	report, err := h.dispatcher.NotifyLaunch(r.Context(), req.Message)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Notifications envoyées !",
		Data:    report,
	})
}
