package get_available_slots

import (
	"time"

	"github.com/mamicio/SG-StudioService/internal/domain"
)

// Request modelo de la consulta de disponibilidad
type Request struct {
	Date time.Time       // fecha consultada, sin hora
	Plan domain.PlanType // flash o plus
}

// Response modelo de respuesta con los slots disponibles
type Response struct {
	Date  time.Time
	Plan  domain.PlanType
	Slots []domain.Slot
}
