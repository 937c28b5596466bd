package googlecalendar

import "errors"

var (
	// ErrNotConfigured se retorna cuando faltan las credenciales o el ID del calendario
	ErrNotConfigured = errors.New("googlecalendar client: calendar not configured")

	// ErrInternal se retorna ante errores internos del cliente
	ErrInternal = errors.New("googlecalendar client: internal error")

	// ErrUpstream se retorna cuando la API de Calendar falla
	ErrUpstream = errors.New("googlecalendar client: calendar API request failed")
)
