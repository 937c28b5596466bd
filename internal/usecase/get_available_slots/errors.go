package get_available_slots

import "errors"

var (
	// ErrInvalidInput se retorna ante datos de entrada inválidos
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidPlan se retorna cuando el plan no es flash ni plus
	ErrInvalidPlan = errors.New("get_available_slots: invalid plan type")

	// ErrPastDate se retorna cuando se consulta una fecha pasada
	ErrPastDate = errors.New("get_available_slots: date is in the past")

	// ErrCalendarUnavailable se retorna cuando el calendario no está
	// configurado o la API falla; el caller no reintenta
	ErrCalendarUnavailable = errors.New("get_available_slots: calendar unavailable")

	// ErrInternal se retorna ante errores internos del usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
