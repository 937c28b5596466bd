package exchange_code

import (
	"context"

	"golang.org/x/oauth2"
)

type AuthService interface {
	ExchangeCode(ctx context.Context, code, redirectURI string) (*oauth2.Token, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
