package verify_token

import (
	"context"

	"github.com/mamicio/SG-StudioService/internal/service/auth"
)

type AuthService interface {
	Login(ctx context.Context, idToken string) (*auth.LoginResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
