package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mamicio/SG-StudioService/internal/api/handlers"
	"github.com/mamicio/SG-StudioService/internal/service/auth"
	"github.com/mamicio/SG-StudioService/pkg/metrics"
	"github.com/mamicio/SG-StudioService/pkg/ratelim"
)

type contextKey string

const (
	// SessionKey es la llave de contexto con la sesión verificada
	SessionKey contextKey = "session"
	// RequestIDKey es la llave de contexto con el ID de la petición
	RequestIDKey contextKey = "requestID"
)

const (
	msgSessionRequired = "Token de autorización requerido"
	msgSessionInvalid  = "Token inválido o expirado"
	msgTooManyRequests = "Demasiadas solicitudes. Intenta de nuevo en 15 minutos."
)

// SessionVerifier verifica tokens de sesión propios
type SessionVerifier interface {
	VerifySessionToken(token string) (*auth.Session, error)
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth exige una sesión válida en el header Authorization y deja la sesión
// en el contexto. La verificación es local: firma y expiración, sin llamadas
// al proveedor de identidad.
func Auth(verifier SessionVerifier, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, msgSessionRequired)
				return
			}

			session, err := verifier.VerifySessionToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				log.Warn("Auth: session verification failed: %v", err)
				handlers.RespondUnauthorized(w, msgSessionInvalid)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext recupera la sesión dejada por Auth
func SessionFromContext(ctx context.Context) (*auth.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*auth.Session)
	return session, ok
}

// RateLimit limita las peticiones por IP del cliente
func RateLimit(limiter *ratelim.RateLimiter, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ratelim.ClientIP(r)
			if !limiter.Allow(ip) {
				log.Warn("RateLimit: too many requests from %s", ip)
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestID asigna un ID único a cada petición y lo expone en el header de
// respuesta para correlacionar logs
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captura el status code para las métricas
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware registra contadores y duración por petición
func MetricsMiddleware(collector *metrics.Metrics, serviceName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			collector.ObserveRequest(r.Method, r.URL.Path, strconv.Itoa(rec.status), time.Since(start).Seconds())
		})
	}
}

// SecurityHeaders aplica los headers de seguridad recomendados
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		next.ServeHTTP(w, r)
	})
}
