package googleidentity

import "errors"

var (
	// ErrNotConfigured se retorna cuando falta el client ID de Google OAuth
	ErrNotConfigured = errors.New("googleidentity client: google oauth not configured")

	// ErrInvalidToken se retorna cuando el ID token no pasa la verificación
	ErrInvalidToken = errors.New("googleidentity client: invalid or expired token")

	// ErrInternal se retorna ante errores internos del cliente
	ErrInternal = errors.New("googleidentity client: internal error")
)
