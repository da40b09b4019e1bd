// Package metrics exposes Prometheus instrumentation for the HTTP edge.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics holds the request counter and latency histogram registered for
// the HTTP server.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewHTTPMetrics registers and returns HTTP server metrics under the given
// namespace. Must be called once per process.
func NewHTTPMetrics(namespace string) *HTTPMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"path", "method", "status"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"path", "method"})

	prometheus.MustRegister(requests, latency)
	return &HTTPMetrics{requests: requests, latency: latency}
}

// Middleware returns an echo middleware that records a counter increment and
// a latency observation per request, labeled by route path.
func (m *HTTPMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			status := c.Response().Status
			if err != nil {
				// Errors reach echo's error handler after this middleware,
				// so the response status still reads as the pre-error value.
				status = http.StatusInternalServerError
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			m.requests.WithLabelValues(path, c.Request().Method, strconv.Itoa(status)).Inc()
			m.latency.WithLabelValues(path, c.Request().Method).
				Observe(float64(time.Since(start).Milliseconds()))
			return err
		}
	}
}

// Handler returns the Prometheus scrape handler for mounting at /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
