package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockle/internal/server/handlers"
	"github.com/iudanet/stockle/internal/server/metrics"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(0.001, 3, 0)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("till-1"), "request %d should pass", i+1)
	}
	assert.False(t, rl.Allow("till-1"), "burst exhausted")

	// У другого клиента свой bucket
	assert.True(t, rl.Allow("till-2"))
	assert.Equal(t, 2, rl.Len())
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Minute)
	defer rl.Stop()

	rl.Allow("old")
	rl.Allow("fresh")

	rl.mu.Lock()
	rl.limiters["old"].lastSeen = time.Now().Add(-2 * time.Minute)
	rl.mu.Unlock()

	rl.evictIdle(time.Now())
	assert.Equal(t, 1, rl.Len())

	rl.mu.Lock()
	_, ok := rl.limiters["fresh"]
	rl.mu.Unlock()
	assert.True(t, ok)
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Millisecond)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}

func TestRateLimitMiddleware(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	rl := NewRateLimiter(0.001, 2, 0)
	defer rl.Stop()

	handler := RateLimitMiddleware(setupTestLogger(), rl, m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(clientID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/stock", nil)
		req = req.WithContext(handlers.WithClientID(req.Context(), clientID))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send("till-1").Code)
	assert.Equal(t, http.StatusOK, send("till-1").Code)

	w := send("till-1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate limit exceeded")

	assert.Equal(t, http.StatusOK, send("till-2").Code)

	families, err := registry.Gather()
	require.NoError(t, err)
	var limited float64
	for _, mf := range families {
		if mf.GetName() == "stockle_http_rate_limited_total" {
			limited = mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(1), limited)
}

func TestRateLimitMiddleware_FallsBackToRemoteHost(t *testing.T) {
	rl := NewRateLimiter(0.001, 1, 0)
	defer rl.Stop()

	handler := RateLimitMiddleware(setupTestLogger(), rl, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.RemoteAddr = "10.0.0.5:41000"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/status", nil)
	req.RemoteAddr = "10.0.0.5:41001"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
