package verify_token

import (
	"errors"
	"net/http"

	"github.com/mamicio/SG-StudioService/internal/api/handlers"
	"github.com/mamicio/SG-StudioService/internal/service/auth"
)

const (
	msgInvalidBody  = "Cuerpo de la solicitud inválido"
	msgMissingToken = "Token requerido"
	msgInvalidToken = "Token de Google inválido"
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

// Handle POST /api/auth/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Decodificamos el body
	var req VerifyTokenRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/auth/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.Token == "" {
		h.logger.Warn("POST /api/auth/verify - Missing token")
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	// Verificamos la identidad y aplicamos la lista de autorizados
	result, err := h.authService.Login(r.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNotConfigured):
			h.logger.Error("POST /api/auth/verify - Auth not configured")
			handlers.RespondInternalError(w, err)

		case errors.Is(err, auth.ErrInvalidToken):
			h.logger.Warn("POST /api/auth/verify - Invalid token: %v", err)
			handlers.RespondUnauthorized(w, msgInvalidToken)

		default:
			h.logger.Error("POST /api/auth/verify - Login failed: %v", err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	if result.Authorized {
		h.logger.Info("POST /api/auth/verify - Session issued: email=%s", result.Email)
	} else {
		h.logger.Warn("POST /api/auth/verify - Access denied: email=%s, reason=%s", result.Email, result.Reason)
	}
	handlers.RespondJSON(w, http.StatusOK, FromLoginResult(result))
}
