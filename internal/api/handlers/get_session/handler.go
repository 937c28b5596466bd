package get_session

import (
	"net/http"

	"github.com/mamicio/SG-StudioService/internal/api/handlers"
	"github.com/mamicio/SG-StudioService/internal/api/middleware"
)

const msgSessionInvalid = "Token inválido o expirado"

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle GET /api/auth/session
// El middleware Auth ya verificó la sesión; acá solo la devolvemos
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /api/auth/session - No session in context")
		handlers.RespondUnauthorized(w, msgSessionInvalid)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}
