package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"jobi-backend/internal/logger"
	"jobi-backend/internal/service"
)

// Handler wires the HTTP surface to the services behind it.
type Handler struct {
	registrations service.RegistrationService
	dispatcher    service.NotificationDispatcher
	stats         service.StatsService
	adminToken    string
}

func NewHandler(registrations service.RegistrationService, dispatcher service.NotificationDispatcher, stats service.StatsService, adminToken string) *Handler {
	return &Handler{
		registrations: registrations,
		dispatcher:    dispatcher,
		stats:         stats,
		adminToken:    adminToken,
	}
}

// RegisterRoutes mounts every endpoint on the router.
func (h *Handler) RegisterRoutes(router *mux.Router, allowedOrigin string) {
	router.Use(corsMiddleware(allowedOrigin))

	router.HandleFunc("/", h.handleRoot).Methods(http.MethodGet)
	router.HandleFunc("/api/inscription", h.handleRegister).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/api/stats", h.handlePublicStats).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/api/notify-launch", h.handleNotifyLaunch).Methods(http.MethodPost, http.MethodOptions)

	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.Use(bearerAuthMiddleware(h.adminToken))
	admin.HandleFunc("/users", h.handleAdminListUsers).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/stats", h.handleAdminStats).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/send-bulk-email", h.handleAdminBulkEmail).Methods(http.MethodPost, http.MethodOptions)
	admin.HandleFunc("/users/{id}", h.handleAdminDeleteUser).Methods(http.MethodDelete, http.MethodOptions)

	router.NotFoundHandler = http.HandlerFunc(h.handleNotFound)
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "🇧🇫 API JOBI - Prêt pour la révolution !",
		"version": "1.0.0",
		"status":  "active",
	})
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, envelope{
		Success: false,
		Message: "Route non trouvée",
	})
}

// envelope is the response shape of the public API.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeServerError logs the cause and answers with a generic 500; internal
// detail never reaches the caller.
func writeServerError(w http.ResponseWriter, r *http.Request, err error) {
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, envelope{
		Success: false,
		Message: "Erreur serveur. Réessayez plus tard.",
	})
}
