package create_booking

import (
	"errors"
	"net/http"

	"github.com/mamicio/SG-StudioService/internal/api/handlers"
	createBooking "github.com/mamicio/SG-StudioService/internal/usecase/create_booking"
)

const (
	msgInvalidBody      = "Cuerpo de la solicitud inválido"
	msgSlotNotAvailable = "El horario seleccionado ya no está disponible"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Decodificamos el body
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	// Llamamos al use case
	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(&req))
	if err != nil {
		// Mapeo de errores del use case
		var validationErrs *createBooking.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			h.logger.Warn("POST /api/bookings - Validation failed: %v", validationErrs.Messages)
			handlers.RespondValidationErrors(w, validationErrs.Messages)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /api/bookings - Slot conflict: date=%s, slot=%s-%s",
				req.Date, req.Slot.Start, req.Slot.End)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrCalendarUnavailable):
			h.logger.Error("POST /api/bookings - Calendar unavailable: %v", err)
			handlers.RespondInternalError(w, err)

		default:
			h.logger.Error("POST /api/bookings - Failed to create booking: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("POST /api/bookings - Booking created: id=%s, date=%s, slot=%s-%s",
		result.ID, req.Date, req.Slot.Start, req.Slot.End)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
