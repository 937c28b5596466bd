package auth

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/mamicio/SG-StudioService/internal/integrations/googleidentity"
)

// IdentityClient interfaz del proveedor de identidad de Google
type IdentityClient interface {
	VerifyIDToken(ctx context.Context, token string) (*googleidentity.UserInfo, error)
	ExchangeCode(ctx context.Context, code, redirectURI string) (*oauth2.Token, error)
	ClientID() string
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
