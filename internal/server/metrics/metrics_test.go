package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Handshake("ok")
	m.Handshake("ok")
	m.Handshake("bad_key_length")
	m.EnvelopeRejected("no_session")
	m.Batch("ok")
	m.EventsApplied("SALE", 3)
	m.EventsApplied("ADD", 0)
	m.RateLimited()

	body := scrape(t, m)
	assert.Contains(t, body, `stockle_session_handshakes_total{result="ok"} 2`)
	assert.Contains(t, body, `stockle_session_handshakes_total{result="bad_key_length"} 1`)
	assert.Contains(t, body, `stockle_session_envelopes_rejected_total{reason="no_session"} 1`)
	assert.Contains(t, body, `stockle_sync_events_applied_total{change_type="SALE"} 3`)
	assert.NotContains(t, body, `change_type="ADD"`)
	assert.Contains(t, body, `stockle_http_rate_limited_total 1`)
}

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetrics_Handler(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.Batch("ok")
	m.ObserveRequest(http.MethodGet, "/status", http.StatusOK, 0.01)

	body := scrape(t, m)
	assert.Contains(t, body, `stockle_sync_batches_total{result="ok"} 1`)
	assert.Contains(t, body, `stockle_http_request_duration_seconds_count{method="GET",path="/status",status="2xx"} 1`)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.Handshake("ok")
		m.EnvelopeRejected("x")
		m.Batch("ok")
		m.EventsApplied("ADD", 1)
		m.RateLimited()
		m.ObserveRequest(http.MethodGet, "/", 200, 1)
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
