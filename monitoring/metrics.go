package monitoring

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	backendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_requests_total",
			Help: "Total calls per backend client and operation",
		},
		[]string{"client", "operation", "status"},
	)

	backendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_request_duration_seconds",
			Help:    "Duration of backend client calls",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
		},
		[]string{"client", "operation"},
	)
)

// ObserveRequest records one backend call. Every client wrapper reports
// through here so the four external collaborators share one metric surface.
func ObserveRequest(client, operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	backendRequests.WithLabelValues(client, operation, status).Inc()
	backendRequestDuration.WithLabelValues(client, operation).Observe(time.Since(start).Seconds())
}

// Serve exposes /metrics on the given port. Runs until the process exits.
func Serve(port string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	if err := http.ListenAndServe(":"+port, mux); err != nil {
		slog.Error("metrics server stopped", "error", err)
	}
}
