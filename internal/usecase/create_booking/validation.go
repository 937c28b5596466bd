package create_booking

import (
	"regexp"
	"strings"
	"time"

	"github.com/mamicio/SG-StudioService/internal/domain"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest valida campo por campo y acumula los mensajes en español
// que ve el usuario; una lista vacía significa solicitud válida
func validateRequest(req *Request, now time.Time) *ValidationErrors {
	var messages []string

	if len(strings.TrimSpace(req.Name)) < domain.MinNameLength {
		messages = append(messages, "Nombre debe tener al menos 2 caracteres")
	}

	if !emailRe.MatchString(strings.TrimSpace(req.Email)) {
		messages = append(messages, "Email inválido")
	}

	if len(strings.ReplaceAll(req.Phone, " ", "")) < domain.MinPhoneDigits {
		messages = append(messages, "Teléfono inválido")
	}

	if req.Date.IsZero() {
		messages = append(messages, "Fecha inválida")
	} else if domain.IsDateInPast(req.Date, now) {
		messages = append(messages, "No se puede reservar fechas pasadas")
	}

	if req.Slot.Start.IsZero() || req.Slot.End.IsZero() ||
		req.Slot.Start.Validate() != nil || req.Slot.End.Validate() != nil {
		messages = append(messages, "Horario no seleccionado")
	}

	if !req.PlanType.IsValid() {
		messages = append(messages, "Tipo de plan inválido")
	}

	if !req.BookingType.IsValid() {
		messages = append(messages, "Tipo de reserva inválido")
	}

	if len(req.Notes) > domain.MaxNotesLength {
		messages = append(messages, "Notas demasiado largas")
	}

	if len(messages) == 0 {
		return nil
	}
	return &ValidationErrors{Messages: messages}
}
