package googlesheets

import "errors"

var (
	// ErrNotConfigured se retorna cuando faltan las credenciales de service account
	ErrNotConfigured = errors.New("googlesheets client: sheets not configured")

	// ErrInternal se retorna ante errores internos del cliente
	ErrInternal = errors.New("googlesheets client: internal error")

	// ErrUpstream se retorna cuando la API de Sheets falla
	ErrUpstream = errors.New("googlesheets client: sheets API request failed")

	// ErrInvalidResponse se retorna cuando la API responde algo inesperado
	ErrInvalidResponse = errors.New("googlesheets client: invalid response")
)
