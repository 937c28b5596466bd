package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/mamicio/SG-StudioService/internal/service/auth"
	"github.com/mamicio/SG-StudioService/pkg/ratelim"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeVerifier struct {
	session *auth.Session
	err     error
}

func (f *fakeVerifier) VerifySessionToken(string) (*auth.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	mw := Auth(&fakeVerifier{}, nopLogger{})
	next := mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run without a session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/finanzas", nil)
	rec := httptest.NewRecorder()
	next.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token de autorización requerido")
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	mw := Auth(&fakeVerifier{err: errors.New("expired")}, nopLogger{})
	next := mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run with an invalid session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/finanzas", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()
	next.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthPutsSessionInContext(t *testing.T) {
	session := &auth.Session{Email: "duena@sweetgarden.co", Name: "Dueña"}
	mw := Auth(&fakeVerifier{session: session}, nopLogger{})

	var got *auth.Session
	next := mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		s, ok := SessionFromContext(r.Context())
		require.True(t, ok)
		got = s
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/finanzas", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	next.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, session, got)
}

func TestRateLimitDeniesAfterBurst(t *testing.T) {
	limiter := ratelim.New(rate.Every(time.Hour), 2)
	mw := RateLimit(limiter, nopLogger{})
	next := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.RemoteAddr = "203.0.113.7:1000"
		rec := httptest.NewRecorder()
		next.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
	req.RemoteAddr = "203.0.113.7:1000"
	rec := httptest.NewRecorder()
	next.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Demasiadas solicitudes")
}

func TestRequestIDHeader(t *testing.T) {
	next := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		assert.NotNil(t, r.Context().Value(RequestIDKey))
	}))

	rec := httptest.NewRecorder()
	next.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestSecurityHeaders(t *testing.T) {
	next := SecurityHeaders(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	rec := httptest.NewRecorder()
	next.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "SAMEORIGIN", rec.Header().Get("X-Frame-Options"))
}
