package ratelim

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter limita peticiones por IP usando token bucket.
// El default (burst 5, un token cada 3 minutos) equivale a 5 reservas
// por cada ventana de 15 minutos.
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	ttl      time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New crea un rate limiter con el límite y burst indicados
func New(limit rate.Limit, burst int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
		ttl:      30 * time.Minute,
	}
	go rl.sweep()
	return rl
}

// NewBookingLimiter crea el limiter de reservas: 5 por 15 minutos por cliente
func NewBookingLimiter() *RateLimiter {
	return New(rate.Every(3*time.Minute), 5)
}

// getLimiter obtiene o crea el limiter de una IP
func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, exists := rl.visitors[ip]; exists {
		v.lastSeen = time.Now()
		return v.limiter
	}

	v := &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst), lastSeen: time.Now()}
	rl.visitors[ip] = v
	return v.limiter
}

// sweep borra las IPs inactivas para que el mapa no crezca sin límite.
// Una IP activa nunca pierde su limiter, así el cupo no se reinicia a mitad
// de ventana.
func (rl *RateLimiter) sweep() {
	for range time.Tick(rl.ttl / 2) {
		rl.sweepIdle()
	}
}

func (rl *RateLimiter) sweepIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, v := range rl.visitors {
		if time.Since(v.lastSeen) > rl.ttl {
			delete(rl.visitors, ip)
		}
	}
}

// Allow indica si la IP puede ejecutar una petición más
func (rl *RateLimiter) Allow(ip string) bool {
	return rl.getLimiter(ip).Allow()
}

// ClientIP extrae la IP del cliente de la petición
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		// Puede traer una lista; la primera IP es la del cliente
		if idx := strings.IndexByte(fwd, ','); idx >= 0 {
			fwd = fwd[:idx]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
