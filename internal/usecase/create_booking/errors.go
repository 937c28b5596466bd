package create_booking

import (
	"errors"
	"strings"
)

var (
	// ErrSlotNotAvailable se retorna cuando el slot pedido ya no está libre
	// al momento de confirmar (carrera entre listar y reservar)
	ErrSlotNotAvailable = errors.New("create_booking: slot is no longer available")

	// ErrCalendarUnavailable se retorna cuando el calendario no está
	// configurado o la API falla
	ErrCalendarUnavailable = errors.New("create_booking: calendar unavailable")

	// ErrInternal se retorna ante errores internos del usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationErrors agrupa los mensajes de validación por campo de una
// solicitud malformada; el handler los devuelve como lista con status 400
type ValidationErrors struct {
	Messages []string
}

// Error implementa error
func (v *ValidationErrors) Error() string {
	return "create_booking: validation failed: " + strings.Join(v.Messages, "; ")
}
