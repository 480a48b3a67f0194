// Package metrics provides Prometheus metrics for the HTTP API and the file store.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filestate_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "filestate_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	eventsDispatchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filestate_events_dispatched_total",
			Help: "Events applied to the file store, by type and whether the state changed",
		},
		[]string{"type", "changed"},
	)

	filesCached = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filestate_files_cached",
			Help: "Number of file metadata records currently held",
		},
	)

	postsTracked = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filestate_posts_tracked",
			Help: "Number of posts with a recorded file id list",
		},
	)
)

// ObserveDispatch records one dispatched event.
func ObserveDispatch(eventType string, changed bool) {
	eventsDispatchedTotal.WithLabelValues(eventType, strconv.FormatBool(changed)).Inc()
}

// SetStateSize publishes the current size of the file store.
func SetStateSize(files, posts int) {
	filesCached.Set(float64(files))
	postsTracked.Set(float64(posts))
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware returns HTTP middleware that records Prometheus metrics.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := newResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		// chi's route pattern keeps file and post ids out of the labels
		path := "unmatched"
		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
			if pattern := routeCtx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
