package googlecalendar

import (
	"context"
	"fmt"
	"time"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/mamicio/SG-StudioService/internal/domain"
)

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client envuelve el servicio de Google Calendar del estudio.
// Se construye una sola vez al arrancar el proceso y se reutiliza; el
// cliente HTTP subyacente es un wrapper sin estado, seguro para uso
// concurrente.
type Client struct {
	svc        *calendar.Service
	calendarID string
	log        Logger
}

// New crea el cliente con credenciales de service account. Si faltan las
// credenciales o el ID del calendario, el cliente se crea deshabilitado y
// cada operación retorna ErrNotConfigured; el proceso sigue corriendo.
func New(ctx context.Context, serviceAccountJSON []byte, calendarID string, log Logger) (*Client, error) {
	if len(serviceAccountJSON) == 0 || calendarID == "" {
		log.Warn("Google Calendar not configured — booking features disabled")
		return &Client{calendarID: calendarID, log: log}, nil
	}

	svc, err := calendar.NewService(ctx,
		option.WithCredentialsJSON(serviceAccountJSON),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create calendar service: %v", ErrInternal, err)
	}

	return &Client{svc: svc, calendarID: calendarID, log: log}, nil
}

// configured indica si el cliente puede hablar con la API
func (c *Client) configured() bool {
	return c.svc != nil && c.calendarID != ""
}

// ListBusyPeriods lista los rangos ocupados del calendario dentro del horario
// de atención de la fecha indicada, en la zona horaria del estudio
func (c *Client) ListBusyPeriods(ctx context.Context, date time.Time) ([]BusyPeriod, error) {
	if !c.configured() {
		return nil, ErrNotConfigured
	}

	timeMin := time.Date(date.Year(), date.Month(), date.Day(), domain.OpenHour, 0, 0, 0, domain.Location)
	timeMax := time.Date(date.Year(), date.Month(), date.Day(), domain.CloseHour, 0, 0, 0, domain.Location)

	events, err := c.svc.Events.List(c.calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list events: %v", ErrUpstream, err)
	}

	busy := make([]BusyPeriod, 0, len(events.Items))
	for _, event := range events.Items {
		start, err := parseEventTime(event.Start)
		if err != nil {
			c.log.Warn("ListBusyPeriods: skipping event id=%s with unparseable start: %v", event.Id, err)
			continue
		}
		end, err := parseEventTime(event.End)
		if err != nil {
			c.log.Warn("ListBusyPeriods: skipping event id=%s with unparseable end: %v", event.Id, err)
			continue
		}
		busy = append(busy, BusyPeriod{Start: start, End: end})
	}

	return busy, nil
}

// InsertEvent inserta un evento de reserva en el calendario
func (c *Client) InsertEvent(ctx context.Context, input EventInput) (*CreatedEvent, error) {
	if !c.configured() {
		return nil, ErrNotConfigured
	}

	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		ColorId:     input.ColorID,
		Start: &calendar.EventDateTime{
			DateTime: input.Start.Format(time.RFC3339),
			TimeZone: domain.TimezoneName,
		},
		End: &calendar.EventDateTime{
			DateTime: input.End.Format(time.RFC3339),
			TimeZone: domain.TimezoneName,
		},
	}

	if len(input.PrivateMetadata) > 0 {
		event.ExtendedProperties = &calendar.EventExtendedProperties{
			Private: input.PrivateMetadata,
		}
	}

	created, err := c.svc.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to insert event: %v", ErrUpstream, err)
	}

	start, err := parseEventTime(created.Start)
	if err != nil {
		start = input.Start
	}
	end, err := parseEventTime(created.End)
	if err != nil {
		end = input.End
	}

	return &CreatedEvent{
		ID:      created.Id,
		Summary: created.Summary,
		Start:   start,
		End:     end,
	}, nil
}

// parseEventTime interpreta el tiempo de un evento; los eventos de día
// completo solo traen Date, anclada a medianoche en la zona del estudio
func parseEventTime(edt *calendar.EventDateTime) (time.Time, error) {
	if edt == nil {
		return time.Time{}, fmt.Errorf("event has no time")
	}
	if edt.DateTime != "" {
		return time.Parse(time.RFC3339, edt.DateTime)
	}
	if edt.Date != "" {
		return time.ParseInLocation(domain.DateFormat, edt.Date, domain.Location)
	}
	return time.Time{}, fmt.Errorf("event has no time")
}
