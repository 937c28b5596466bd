package get_auth_config

import (
	"net/http"

	"github.com/mamicio/SG-StudioService/internal/api/handlers"
)

type Handler struct {
	authService AuthService
	logger      Logger
}

func NewHandler(authService AuthService, logger Logger) *Handler {
	return &Handler{
		authService: authService,
		logger:      logger,
	}
}

// Handle GET /api/auth/config
// Expone el client ID público de Google que usa el botón de login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, &AuthConfigResponse{
		ClientID: h.authService.ClientID(),
	})
}
