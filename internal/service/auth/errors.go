package auth

import "errors"

var (
	// ErrNotConfigured se retorna cuando Google OAuth no está configurado
	ErrNotConfigured = errors.New("auth: google oauth not configured")

	// ErrInvalidToken se retorna cuando el token de Google no pasa la verificación
	ErrInvalidToken = errors.New("auth: invalid or expired google token")

	// ErrInvalidSession se retorna cuando la sesión es inválida o expiró
	ErrInvalidSession = errors.New("auth: invalid or expired session")

	// ErrInternal se retorna ante errores internos del servicio
	ErrInternal = errors.New("auth: internal error")
)
