package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"toolkit/internal/utils"
)

// Metrics records request counts, durations and in-flight requests for
// every route.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		utils.InFlightRequests.Inc()
		defer utils.InFlightRequests.Dec()

		lrw := &statusResponseWriter{ResponseWriter: w}
		next.ServeHTTP(lrw, r)

		status := strconv.Itoa(lrw.status())
		utils.HTTPRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		utils.HTTPRequestDurationSeconds.WithLabelValues(r.Method, r.URL.Path, status).Observe(time.Since(start).Seconds())
	})
}

// statusResponseWriter captures the status code written by the handler.
type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusResponseWriter) status() int {
	if w.statusCode == 0 {
		return http.StatusOK
	}
	return w.statusCode
}
