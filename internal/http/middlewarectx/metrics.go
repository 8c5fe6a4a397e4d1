package middlewarectx

import (
	"net/http"

	"github.com/hackerhosting/backend/internal/metrics"
)

// MetricsMiddleware считает обработанные HTTP-запросы по методу и шаблону пути.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, r.URL.Path).Inc()
		next.ServeHTTP(w, r)
	})
}
