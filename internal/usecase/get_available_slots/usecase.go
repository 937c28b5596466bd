package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/mamicio/SG-StudioService/internal/domain"
	"github.com/mamicio/SG-StudioService/internal/integrations/googlecalendar"
)

// UseCase use case de consulta de slots disponibles para una fecha y plan
type UseCase struct {
	calendar     CalendarClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase crea una nueva instancia del use case
func NewUseCase(calendar CalendarClient, logger Logger) *UseCase {
	return &UseCase{
		calendar:     calendar,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute ejecuta la consulta de disponibilidad
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, plan=%s",
		req.Date.Format(domain.DateFormat), req.Plan)

	// 1. Validación de entrada
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Rechazamos fechas pasadas antes de tocar el calendario
	now := uc.timeProvider.Now()
	if domain.IsDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: past date %s rejected", req.Date.Format(domain.DateFormat))
		return nil, ErrPastDate
	}

	// 3. Rangos ocupados del día según el calendario
	busyPeriods, err := uc.calendar.ListBusyPeriods(ctx, req.Date)
	if err != nil {
		if errors.Is(err, googlecalendar.ErrNotConfigured) {
			uc.logger.Error("GetAvailableSlots: calendar not configured")
			return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to list busy periods: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	// 4. Cálculo de slots libres
	busy := make([]domain.BusyPeriod, len(busyPeriods))
	for i, b := range busyPeriods {
		busy[i] = domain.BusyPeriod{Start: b.Start, End: b.End}
	}

	slots := domain.AvailableSlots(req.Plan, req.Date, busy)

	uc.logger.Info("GetAvailableSlots: %d slots available for date=%s, plan=%s (%d busy periods)",
		len(slots), req.Date.Format(domain.DateFormat), req.Plan, len(busy))

	return &Response{
		Date:  req.Date,
		Plan:  req.Plan,
		Slots: slots,
	}, nil
}
