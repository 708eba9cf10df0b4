package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	providerCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_provider_calls_total",
			Help: "LLM provider calls by provider and outcome (ok, empty, error)",
		},
		[]string{"provider", "outcome"},
	)

	generationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generations_total",
			Help: "Total number of generated pieces of copy by kind",
		},
		[]string{"kind"},
	)

	leadsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_scored_total",
			Help: "Total number of scored leads by status",
		},
		[]string{"status"},
	)

	sentimentFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentiment_failures_total",
			Help: "Total number of failed sentiment classifications",
		},
	)
)

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		path := routePattern(r)

		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// routePattern returns the matched chi pattern, e.g. /admin/users/{id}/toggle.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

func RecordProviderCall(provider, outcome string) {
	providerCalls.WithLabelValues(provider, outcome).Inc()
}

func RecordGeneration(kind string) {
	generationsTotal.WithLabelValues(kind).Inc()
}

func RecordLeadScored(status string) {
	leadsScored.WithLabelValues(status).Inc()
}

func RecordSentimentFailure() {
	sentimentFailures.Inc()
}
