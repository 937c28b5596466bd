package create_booking

import (
	"time"

	"github.com/mamicio/SG-StudioService/internal/domain"
	createBooking "github.com/mamicio/SG-StudioService/internal/usecase/create_booking"
	"github.com/mamicio/SG-StudioService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Date        string      `json:"date"`
	Slot        BookingSlot `json:"slot"`
	PlanType    string      `json:"planType"`
	BookingType string      `json:"bookingType"`
	Notes       string      `json:"notes"`
}

// BookingSlot modelo del slot pedido
type BookingSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// ToUseCaseRequest convierte el HTTP request en el request del use case.
// La fecha inválida queda en cero: la validación del use case la reporta
// junto con el resto de los campos.
func ToUseCaseRequest(req *CreateBookingRequest) *createBooking.Request {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		date = time.Time{}
	}

	return &createBooking.Request{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Date:  date,
		Slot: domain.Slot{
			Start: types.TimeString(req.Slot.Start),
			End:   types.TimeString(req.Slot.End),
		},
		PlanType:    domain.PlanType(req.PlanType),
		BookingType: domain.BookingType(req.BookingType),
		Notes:       req.Notes,
	}
}

// FromUseCaseResponse convierte la respuesta del use case en el HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:      resp.ID,
		Summary: resp.Summary,
		Start:   resp.Start.Format(time.RFC3339),
		End:     resp.End.Format(time.RFC3339),
	}
}
