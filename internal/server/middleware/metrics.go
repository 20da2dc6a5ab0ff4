package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/iudanet/stockle/internal/server/metrics"
)

// MetricsMiddleware учитывает длительность запросов по шаблону маршрута.
// Подключается через router.Use, чтобы маршрут был уже определен.
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			path := "unmatched"
			if route := mux.CurrentRoute(r); route != nil {
				if tpl, err := route.GetPathTemplate(); err == nil {
					path = tpl
				}
			}
			m.ObserveRequest(r.Method, path, wrapped.statusCode, time.Since(start).Seconds())
		})
	}
}
