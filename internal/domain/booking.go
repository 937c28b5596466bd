package domain

import "time"

// BookingRequest son los datos validados de una solicitud de reserva
type BookingRequest struct {
	Name        string
	Email       string
	Phone       string
	Date        time.Time // fecha de la reserva, sin hora
	Slot        Slot
	PlanType    PlanType
	BookingType BookingType
	Notes       string
}

// ColorID retorna el color del evento de calendario según el plan
func (r *BookingRequest) ColorID() string {
	if r.PlanType == PlanFlash {
		return ColorIDFlash
	}
	return ColorIDPlus
}

// CreatedBooking es la confirmación mínima que se devuelve al cliente.
// El calendario es el dueño del estado; no se vuelve a leer el evento.
type CreatedBooking struct {
	ID      string
	Summary string
	Start   time.Time
	End     time.Time
}
