package create_booking

import (
	"time"

	"github.com/mamicio/SG-StudioService/internal/domain"
)

// Request modelo de la solicitud de reserva, ya parseada pero sin validar
type Request struct {
	Name        string
	Email       string
	Phone       string
	Date        time.Time // fecha de la reserva, sin hora
	Slot        domain.Slot
	PlanType    domain.PlanType
	BookingType domain.BookingType
	Notes       string
}

// Response modelo de respuesta con la reserva creada
type Response struct {
	ID      string
	Summary string
	Start   time.Time
	End     time.Time
}
