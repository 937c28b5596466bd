package create_booking

import (
	"context"
	"time"

	"github.com/mamicio/SG-StudioService/internal/integrations/googlecalendar"
)

// CalendarClient interfaz del cliente de Google Calendar
type CalendarClient interface {
	// ListBusyPeriods lista los rangos ocupados del día dentro del horario de atención
	ListBusyPeriods(ctx context.Context, date time.Time) ([]googlecalendar.BusyPeriod, error)
	// InsertEvent inserta el evento de la reserva
	InsertEvent(ctx context.Context, input googlecalendar.EventInput) (*googlecalendar.CreatedEvent, error)
}

// TimeProvider interfaz para obtener la hora actual (para testing)
type TimeProvider interface {
	Now() time.Time
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider proveedor de tiempo real para producción
type RealTimeProvider struct{}

// Now retorna la hora actual
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
