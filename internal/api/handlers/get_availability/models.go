package get_availability

import (
	"time"

	"github.com/mamicio/SG-StudioService/internal/domain"
	getAvailableSlots "github.com/mamicio/SG-StudioService/internal/usecase/get_available_slots"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date  string          `json:"date"`
	Plan  string          `json:"plan"`
	Slots []AvailableSlot `json:"slots"`
}

// AvailableSlot modelo de un slot disponible
type AvailableSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse convierte la respuesta del use case en el HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Start: slot.Start.String(),
			End:   slot.End.String(),
		}
	}

	return &AvailabilityResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Plan:  string(resp.Plan),
		Slots: slots,
	}
}

// ToUseCaseRequest crea el request del use case desde los query params
func ToUseCaseRequest(dateStr, planStr string) (*getAvailableSlots.Request, error) {
	// Parseamos la fecha
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date: date,
		Plan: domain.PlanType(planStr),
	}, nil
}
