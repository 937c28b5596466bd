package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"github.com/mamicio/SG-StudioService/internal/integrations/googleidentity"
)

// Mensajes visibles cuando la identidad es válida pero no autorizada
const (
	reasonEmailNotVerified = "Email no verificado"
	reasonNotAuthorized    = "No autorizado"
)

// Service servicio de autenticación y autorización del dashboard.
// Verifica identidades de Google, aplica la lista de emails autorizados y
// emite sesiones JWT propias de corta duración.
type Service struct {
	identity   IdentityClient
	jwtSecret  []byte
	sessionTTL time.Duration
	allowList  map[string]struct{}
	logger     Logger
}

// NewService crea el servicio de auth. Si no hay secreto configurado se
// genera uno aleatorio: las sesiones no sobreviven reinicios del proceso.
func NewService(identity IdentityClient, jwtSecret string, sessionTTL time.Duration, authorizedEmails []string, logger Logger) *Service {
	if jwtSecret == "" {
		raw := make([]byte, 32)
		_, _ = rand.Read(raw)
		jwtSecret = hex.EncodeToString(raw)
		logger.Warn("JWT_SECRET not set — sessions will not survive server restarts")
	}

	allowList := make(map[string]struct{}, len(authorizedEmails))
	for _, email := range authorizedEmails {
		allowList[strings.ToLower(strings.TrimSpace(email))] = struct{}{}
	}

	return &Service{
		identity:   identity,
		jwtSecret:  []byte(jwtSecret),
		sessionTTL: sessionTTL,
		allowList:  allowList,
		logger:     logger,
	}
}

// ClientID retorna el client ID público de Google para el frontend
func (s *Service) ClientID() string {
	return s.identity.ClientID()
}

// IsAuthorizedEmail aplica la lista de emails autorizados, sin distinguir
// mayúsculas
func (s *Service) IsAuthorizedEmail(email string) bool {
	_, ok := s.allowList[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

// Login verifica un ID token de Google y, si el email está verificado y
// autorizado, emite la sesión propia que el navegador va a reenviar en las
// siguientes llamadas
func (s *Service) Login(ctx context.Context, idToken string) (*LoginResult, error) {
	user, err := s.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		if errors.Is(err, googleidentity.ErrNotConfigured) {
			s.logger.Error("Login: google oauth not configured")
			return nil, ErrNotConfigured
		}
		s.logger.Warn("Login: token verification failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !user.EmailVerified {
		s.logger.Warn("Login: unverified email %s rejected", user.Email)
		return &LoginResult{
			Authorized: false,
			Email:      user.Email,
			Reason:     reasonEmailNotVerified,
		}, nil
	}

	if !s.IsAuthorizedEmail(user.Email) {
		s.logger.Warn("Login: email %s not on the allow list", user.Email)
		return &LoginResult{
			Authorized: false,
			Email:      user.Email,
			Name:       user.Name,
			Reason:     reasonNotAuthorized,
		}, nil
	}

	sessionToken, err := s.CreateSessionToken(user.Email, user.Name)
	if err != nil {
		s.logger.Error("Login: failed to sign session token: %v", err)
		return nil, fmt.Errorf("%w: failed to sign session token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: session issued for %s", user.Email)

	return &LoginResult{
		Authorized:   true,
		Email:        user.Email,
		Name:         user.Name,
		SessionToken: sessionToken,
	}, nil
}

// ExchangeCode intercambia un authorization code por tokens de Google
// (flujo de popup con redirect)
func (s *Service) ExchangeCode(ctx context.Context, code, redirectURI string) (*oauth2.Token, error) {
	token, err := s.identity.ExchangeCode(ctx, code, redirectURI)
	if err != nil {
		if errors.Is(err, googleidentity.ErrNotConfigured) {
			return nil, ErrNotConfigured
		}
		s.logger.Warn("ExchangeCode: exchange failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return token, nil
}

// CreateSessionToken firma una sesión JWT de corta duración con {email, name}
func (s *Service) CreateSessionToken(email, name string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// VerifySessionToken valida firma y expiración de una sesión; es un chequeo
// puramente local, sin llamadas al proveedor de identidad
func (s *Service) VerifySessionToken(tokenString string) (*Session, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	return &Session{Email: claims.Email, Name: claims.Name}, nil
}
