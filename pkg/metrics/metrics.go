// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint:gochecknoglobals
var (
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec
	queueTransitionsTotal      *prometheus.CounterVec
	queueClaimsTotal           *prometheus.CounterVec
	webhookEventsTotal         *prometheus.CounterVec
	analyticsEventsTotal       *prometheus.CounterVec
	auditChecksTotal           *prometheus.CounterVec
	auditCheckDurationSeconds  prometheus.Histogram
	formCapturesTotal          *prometheus.CounterVec
	formChangesTotal           *prometheus.CounterVec
	rateLimitWaitSeconds       *prometheus.HistogramVec

	once sync.Once
)

// Init registers the collectors with the default registry.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "directorybolt_http_requests_total",
				Help: "Total number of HTTP requests, labeled by method and code.",
			},
			[]string{"method", "code"},
		)

		httpRequestDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "directorybolt_http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method and route.",
				Buckets: DefaultBuckets,
			},
			[]string{"method", "route"},
		)

		queueTransitionsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "directorybolt_queue_transitions_total",
				Help: "Queue job status transitions, labeled by target status.",
			},
			[]string{"status"},
		)

		queueClaimsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "directorybolt_queue_claims_total",
				Help: "Claim attempts by the automation worker, labeled by result.",
			},
			[]string{"result"},
		)

		webhookEventsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "directorybolt_payment_webhook_events_total",
				Help: "Payment webhook events, labeled by event type and result.",
			},
			[]string{"type", "result"},
		)

		analyticsEventsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "directorybolt_analytics_events_total",
				Help: "Analytics events, labeled by result (accepted, flushed, dropped).",
			},
			[]string{"result"},
		)

		auditChecksTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "directorybolt_directory_audit_checks_total",
				Help: "Directory URL checks, labeled by accessibility.",
			},
			[]string{"accessible"},
		)

		auditCheckDurationSeconds = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "directorybolt_directory_audit_check_duration_seconds",
				Help:    "Histogram of directory URL check latencies.",
				Buckets: DefaultBuckets,
			},
		)

		formCapturesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "directorybolt_form_captures_total",
				Help: "Submission page captures, labeled by status.",
			},
			[]string{"status"},
		)

		formChangesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "directorybolt_form_changes_total",
				Help: "Detected submission page changes, labeled by change type.",
			},
			[]string{"type"},
		)

		rateLimitWaitSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "directorybolt_rate_limit_wait_seconds",
				Help:    "Time spent waiting for upstream rate limit budget.",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"provider"},
		)
	})
}

// ObserveHTTPRequest records a served HTTP request.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	Init()
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveQueueTransition records a queue job moving to status.
func ObserveQueueTransition(status string) {
	Init()
	queueTransitionsTotal.WithLabelValues(status).Inc()
}

// ObserveQueueClaim records a claim attempt; claimed is false when the queue was empty.
func ObserveQueueClaim(claimed bool) {
	Init()
	result := "empty"
	if claimed {
		result = "claimed"
	}
	queueClaimsTotal.WithLabelValues(result).Inc()
}

// ObserveWebhookEvent records a processed payment webhook event.
func ObserveWebhookEvent(eventType, result string) {
	Init()
	webhookEventsTotal.WithLabelValues(eventType, result).Inc()
}

// AddAnalyticsEvents adds n events with the given result.
func AddAnalyticsEvents(result string, n int) {
	Init()
	analyticsEventsTotal.WithLabelValues(result).Add(float64(n))
}

// ObserveAuditCheck records one directory URL check.
func ObserveAuditCheck(accessible bool, duration time.Duration) {
	Init()
	auditChecksTotal.WithLabelValues(strconv.FormatBool(accessible)).Inc()
	auditCheckDurationSeconds.Observe(duration.Seconds())
}

// ObserveFormCapture records a submission page capture.
func ObserveFormCapture(status string) {
	Init()
	formCapturesTotal.WithLabelValues(status).Inc()
}

// ObserveFormChange records a detected change of the given type.
func ObserveFormChange(changeType string) {
	Init()
	formChangesTotal.WithLabelValues(changeType).Inc()
}

// ObserveRateLimitWait records time spent waiting for provider budget.
func ObserveRateLimitWait(provider string, d time.Duration) {
	Init()
	rateLimitWaitSeconds.WithLabelValues(provider).Observe(d.Seconds())
}
