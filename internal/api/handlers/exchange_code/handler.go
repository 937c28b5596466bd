package exchange_code

import (
	"errors"
	"net/http"

	"github.com/mamicio/SG-StudioService/internal/api/handlers"
	"github.com/mamicio/SG-StudioService/internal/service/auth"
)

const (
	msgInvalidBody = "Cuerpo de la solicitud inválido"
	msgMissingCode = "Código de autorización requerido"
	msgInvalidCode = "Código de autorización inválido o expirado"
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

// Handle POST /api/auth/exchange
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Decodificamos el body
	var req ExchangeCodeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/auth/exchange - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.Code == "" {
		h.logger.Warn("POST /api/auth/exchange - Missing authorization code")
		handlers.RespondBadRequest(w, msgMissingCode)
		return
	}

	// Intercambiamos el code por tokens de Google
	token, err := h.authService.ExchangeCode(r.Context(), req.Code, req.RedirectURI)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNotConfigured):
			h.logger.Error("POST /api/auth/exchange - Auth not configured")
			handlers.RespondInternalError(w, err)

		case errors.Is(err, auth.ErrInvalidToken):
			h.logger.Warn("POST /api/auth/exchange - Exchange rejected: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCode)

		default:
			h.logger.Error("POST /api/auth/exchange - Exchange failed: %v", err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("POST /api/auth/exchange - Code exchanged")
	handlers.RespondJSON(w, http.StatusOK, FromToken(token))
}
