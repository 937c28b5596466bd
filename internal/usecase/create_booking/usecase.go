package create_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/mamicio/SG-StudioService/internal/domain"
	"github.com/mamicio/SG-StudioService/internal/integrations/googlecalendar"
)

// UseCase use case de creación de una reserva en el calendario del estudio
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

// Execute ejecuta la creación de la reserva.
//
// Entre que el cliente listó la disponibilidad y envió la reserva pudo
// entrar otra reserva; se revalida contra el calendario inmediatamente
// antes de escribir. La ventana no se elimina del todo (el calendario no
// ofrece transacciones): un conflicto tardío es un error normal de usuario,
// no un bug.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, date=%s, slot=%s-%s, plan=%s, type=%s",
		req.Email, req.Date.Format(domain.DateFormat), req.Slot.Start, req.Slot.End,
		req.PlanType, req.BookingType)

	// 1. Validación campo por campo
	now := uc.timeProvider.Now()
	if verr := validateRequest(req, now); verr != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", verr)
		return nil, verr
	}

	// 2. Revalidamos que el slot pedido siga libre
	busyPeriods, err := uc.calendar.ListBusyPeriods(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list busy periods: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	busy := make([]domain.BusyPeriod, len(busyPeriods))
	for i, b := range busyPeriods {
		busy[i] = domain.BusyPeriod{Start: b.Start, End: b.End}
	}

	available := domain.AvailableSlots(req.PlanType, req.Date, busy)
	if !domain.ContainsSlot(available, req.Slot) {
		uc.logger.Warn("CreateBooking: slot %s-%s no longer available on %s",
			req.Slot.Start, req.Slot.End, req.Date.Format(domain.DateFormat))
		return nil, ErrSlotNotAvailable
	}

	// 3. Construimos el evento con los metadatos de la reserva
	booking := &domain.BookingRequest{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       strings.TrimSpace(req.Phone),
		Date:        req.Date,
		Slot:        req.Slot,
		PlanType:    req.PlanType,
		BookingType: req.BookingType,
		Notes:       strings.TrimSpace(req.Notes),
	}

	input, err := buildEventInput(booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to build event: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Insertamos el evento; el calendario es el dueño del estado
	created, err := uc.calendar.InsertEvent(ctx, input)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to insert event: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	uc.logger.Info("CreateBooking: created event id=%s for %s on %s",
		created.ID, booking.Email, req.Date.Format(domain.DateFormat))

	return &Response{
		ID:      created.ID,
		Summary: created.Summary,
		Start:   created.Start,
		End:     created.End,
	}, nil
}

// buildEventInput arma el evento de calendario de la reserva: resumen,
// descripción legible y metadatos privados para auditoría posterior
func buildEventInput(b *domain.BookingRequest) (googlecalendar.EventInput, error) {
	start, err := b.Slot.Start.At(b.Date, domain.Location)
	if err != nil {
		return googlecalendar.EventInput{}, err
	}
	end, err := b.Slot.End.At(b.Date, domain.Location)
	if err != nil {
		return googlecalendar.EventInput{}, err
	}

	planLabel := strings.ToUpper(string(b.PlanType))
	typeLabel := b.BookingType.Label()

	lines := []string{
		fmt.Sprintf("Plan: %s", planLabel),
		fmt.Sprintf("Tipo: %s", typeLabel),
		fmt.Sprintf("Nombre: %s", b.Name),
		fmt.Sprintf("Email: %s", b.Email),
		fmt.Sprintf("Teléfono: %s", b.Phone),
	}
	if b.Notes != "" {
		lines = append(lines, fmt.Sprintf("Notas: %s", b.Notes))
	}

	return googlecalendar.EventInput{
		Summary:     fmt.Sprintf("%s — %s (%s)", planLabel, b.Name, typeLabel),
		Description: strings.Join(lines, "\n"),
		Start:       start,
		End:         end,
		ColorID:     b.ColorID(),
		PrivateMetadata: map[string]string{
			"bookingType":   string(b.BookingType),
			"planType":      string(b.PlanType),
			"customerName":  b.Name,
			"customerEmail": b.Email,
			"customerPhone": b.Phone,
		},
	}, nil
}
