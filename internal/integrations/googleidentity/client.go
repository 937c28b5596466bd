package googleidentity

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UserInfo son los datos de identidad extraídos de un ID token verificado
type UserInfo struct {
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
}

// Client verifica credenciales de identidad de Google. La verificación de
// firma/audiencia/expiración se delega al paquete idtoken, que cachea las
// llaves públicas del proveedor.
type Client struct {
	clientID     string
	clientSecret string
	log          Logger
}

// New crea el cliente de identidad; sin client ID queda deshabilitado
func New(clientID, clientSecret string, log Logger) *Client {
	if clientID == "" {
		log.Warn("Google OAuth not configured — login disabled")
	}
	return &Client{clientID: clientID, clientSecret: clientSecret, log: log}
}

// ClientID retorna el client ID público para el frontend
func (c *Client) ClientID() string {
	return c.clientID
}

// VerifyIDToken verifica un ID token de Google (One Tap u otros flujos)
// contra el client ID del estudio y retorna la identidad del usuario
func (c *Client) VerifyIDToken(ctx context.Context, token string) (*UserInfo, error) {
	if c.clientID == "" {
		return nil, ErrNotConfigured
	}

	payload, err := idtoken.Validate(ctx, token, c.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return &UserInfo{
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		Picture:       claimString(payload.Claims, "picture"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
	}, nil
}

// ExchangeCode intercambia un authorization code por tokens (flujo de popup
// con redirect del lado del servidor)
func (c *Client) ExchangeCode(ctx context.Context, code, redirectURI string) (*oauth2.Token, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return nil, ErrNotConfigured
	}

	conf := &oauth2.Config{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		RedirectURL:  redirectURI,
		Endpoint:     google.Endpoint,
	}

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to exchange code: %v", ErrInvalidToken, err)
	}

	return token, nil
}

func claimString(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func claimBool(claims map[string]interface{}, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
