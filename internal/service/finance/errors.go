package finance

import "errors"

var (
	// ErrInvalidSheetType se retorna ante un tipo de hoja desconocido
	ErrInvalidSheetType = errors.New("finance: invalid sheet type")

	// ErrInvalidInput se retorna ante parámetros inválidos
	ErrInvalidInput = errors.New("finance: invalid input data")

	// ErrMissingColumn se retorna cuando la hoja no tiene una columna
	// requerida; es un error de configuración de la hoja, no del request
	ErrMissingColumn = errors.New("finance: required column not found in sheet")

	// ErrSheetsUnavailable se retorna cuando Sheets no está configurado o
	// la API falla
	ErrSheetsUnavailable = errors.New("finance: sheets unavailable")

	// ErrInternal se retorna ante errores internos del servicio
	ErrInternal = errors.New("finance: internal error")
)
