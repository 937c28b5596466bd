package get_availability

import (
	"errors"
	"net/http"

	"github.com/mamicio/SG-StudioService/internal/api/handlers"
	getAvailableSlots "github.com/mamicio/SG-StudioService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate = "Fecha requerida"
	msgInvalidDate = "Formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidPlan = "Tipo de plan inválido"
	msgPastDate    = "No se puede consultar fechas pasadas"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/availability
// Query params: date (required, YYYY-MM-DD), plan (required, flash|plus)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Extraemos date de los query params
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /api/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	planStr := r.URL.Query().Get("plan")

	// Formamos el request del use case (con parseo de fecha)
	useCaseReq, err := ToUseCaseRequest(dateStr, planStr)
	if err != nil {
		h.logger.Warn("GET /api/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Llamamos al use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Mapeo de errores del use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidPlan):
			h.logger.Warn("GET /api/availability - Invalid plan: plan=%s", planStr)
			handlers.RespondBadRequest(w, msgInvalidPlan)

		case errors.Is(err, getAvailableSlots.ErrPastDate):
			h.logger.Warn("GET /api/availability - Past date rejected: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getAvailableSlots.ErrCalendarUnavailable):
			h.logger.Error("GET /api/availability - Calendar unavailable: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w, err)

		default:
			h.logger.Error("GET /api/availability - Failed to get slots: date=%s, plan=%s, error=%v", dateStr, planStr, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	// Formamos el HTTP response
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /api/availability - Slots retrieved: date=%s, plan=%s, slots_count=%d",
		dateStr, planStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
