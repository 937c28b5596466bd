package auth

import "github.com/golang-jwt/jwt/v5"

// SessionClaims son los claims del token de sesión propio del estudio.
// Una vez emitido, la sesión es independiente de la credencial de Google
// que la originó.
type SessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Session es una sesión verificada
type Session struct {
	Email string
	Name  string
}

// LoginResult es el resultado de verificar un token de Google.
// Authorized en false no es un error de sistema: la identidad es válida
// pero no tiene acceso al dashboard.
type LoginResult struct {
	Authorized   bool
	Email        string
	Name         string
	Reason       string // motivo visible cuando Authorized es false
	SessionToken string // emitido solo cuando Authorized es true
}
