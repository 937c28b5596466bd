package googlecalendar

import "time"

// BusyPeriod es el rango ocupado por un evento existente del calendario
type BusyPeriod struct {
	Start time.Time
	End   time.Time
}

// EventInput son los datos de un evento de reserva a insertar
type EventInput struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	ColorID     string
	// Metadatos privados del evento, solo escritura; este sistema no los
	// vuelve a leer
	PrivateMetadata map[string]string
}

// CreatedEvent es la confirmación del evento insertado
type CreatedEvent struct {
	ID      string
	Summary string
	Start   time.Time
	End     time.Time
}
