package metrics

import (
	"time" // Durations

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcomes
const (
	SubmissionOK         = "ok"
	SubmissionInvalid    = "invalid"
	SubmissionStoreError = "store_error"
)

var submissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "survey",
		Name:      "submissions_total",
		Help:      "Survey form submissions by outcome.",
	},
	[]string{"status"},
)

var reportGenerationSeconds = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: "survey",
		Name:      "report_generation_seconds",
		Help:      "Time spent rebuilding the CSV and charts.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	},
)

var httpRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "survey",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method, route and status.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
	},
	[]string{"method", "route", "status"},
)

// ObserveSubmission counts one form submission
func ObserveSubmission(status string) {
	submissionsTotal.WithLabelValues(status).Inc()
}

// ObserveReport records how long a report rebuild took
func ObserveReport(elapsed time.Duration) {
	reportGenerationSeconds.Observe(elapsed.Seconds())
}

// ObserveRequest records one served HTTP request
func ObserveRequest(method, route, status string, elapsed time.Duration) {
	httpRequestDuration.
		WithLabelValues(method, route, status).
		Observe(elapsed.Seconds())
}
