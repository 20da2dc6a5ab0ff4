// Package metrics содержит Prometheus-метрики inventory API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stockle"

// Metrics - счетчики API. Нулевой *Metrics допустим: вызовы ничего не делают.
type Metrics struct {
	registry          *prometheus.Registry
	handshakes        *prometheus.CounterVec
	envelopesRejected *prometheus.CounterVec
	batches           *prometheus.CounterVec
	events            *prometheus.CounterVec
	rateLimited       prometheus.Counter
	requestDuration   *prometheus.HistogramVec
}

// New создает метрики и регистрирует их в registry
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{registry: registry}

	m.handshakes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "session",
		Name:      "handshakes_total",
		Help:      "Session key handshakes by result",
	}, []string{"result"})

	m.envelopesRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "session",
		Name:      "envelopes_rejected_total",
		Help:      "Requests rejected by the envelope layer by reason",
	}, []string{"reason"})

	m.batches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync",
		Name:      "batches_total",
		Help:      "Change batches received from tills by result",
	}, []string{"result"})

	m.events = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync",
		Name:      "events_applied_total",
		Help:      "Change events applied to inventory by change type",
	}, []string{"change_type"})

	m.rateLimited = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the per-client rate limiter",
	})

	m.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route and status",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	registry.MustRegister(
		m.handshakes,
		m.envelopesRejected,
		m.batches,
		m.events,
		m.rateLimited,
		m.requestDuration,
	)

	return m
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Handshake учитывает попытку установки ключа сессии
func (m *Metrics) Handshake(result string) {
	if m == nil {
		return
	}
	m.handshakes.WithLabelValues(result).Inc()
}

// EnvelopeRejected учитывает отклоненный запрос
func (m *Metrics) EnvelopeRejected(reason string) {
	if m == nil {
		return
	}
	m.envelopesRejected.WithLabelValues(reason).Inc()
}

// Batch учитывает принятый или отклоненный пакет изменений
func (m *Metrics) Batch(result string) {
	if m == nil {
		return
	}
	m.batches.WithLabelValues(result).Inc()
}

// EventsApplied учитывает примененные события одного типа
func (m *Metrics) EventsApplied(changeType string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.events.WithLabelValues(changeType).Add(float64(n))
}

// RateLimited учитывает отклоненный лимитером запрос
func (m *Metrics) RateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}

// ObserveRequest учитывает длительность запроса
func (m *Metrics) ObserveRequest(method, path string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, path, statusClass(status)).Observe(seconds)
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
