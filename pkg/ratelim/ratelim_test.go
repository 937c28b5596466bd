package ratelim

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingLimiterDeniesSixthRequest(t *testing.T) {
	rl := NewBookingLimiter()

	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow("203.0.113.7"), "request %d should pass", i+1)
	}
	assert.False(t, rl.Allow("203.0.113.7"), "sixth request should be denied")
}

func TestLimiterIsPerIP(t *testing.T) {
	rl := NewBookingLimiter()

	for i := 0; i < 5; i++ {
		rl.Allow("203.0.113.7")
	}
	assert.False(t, rl.Allow("203.0.113.7"))

	// Otra IP tiene su propio bucket
	assert.True(t, rl.Allow("198.51.100.1"))
}

func TestSweepKeepsActiveVisitors(t *testing.T) {
	rl := NewBookingLimiter()

	for i := 0; i < 5; i++ {
		rl.Allow("203.0.113.7")
	}
	assert.False(t, rl.Allow("203.0.113.7"))

	// Una IP activa conserva su bucket agotado tras la limpieza
	rl.sweepIdle()
	assert.False(t, rl.Allow("203.0.113.7"))
}

func TestSweepDropsIdleVisitors(t *testing.T) {
	rl := NewBookingLimiter()

	for i := 0; i < 5; i++ {
		rl.Allow("203.0.113.7")
	}

	rl.mu.Lock()
	rl.visitors["203.0.113.7"].lastSeen = time.Now().Add(-time.Hour)
	rl.mu.Unlock()

	rl.sweepIdle()

	rl.mu.Lock()
	_, exists := rl.visitors["203.0.113.7"]
	rl.mu.Unlock()
	assert.False(t, exists)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{
			name:       "remote addr with port",
			remoteAddr: "203.0.113.7:54321",
			want:       "203.0.113.7",
		},
		{
			name:       "single forwarded ip wins",
			remoteAddr: "10.0.0.1:80",
			forwarded:  "203.0.113.7",
			want:       "203.0.113.7",
		},
		{
			name:       "forwarded list takes the first entry",
			remoteAddr: "10.0.0.1:80",
			forwarded:  "203.0.113.7, 70.41.3.18, 150.172.238.178",
			want:       "203.0.113.7",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "203.0.113.7",
			want:       "203.0.113.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.want, ClientIP(req))
		})
	}
}
