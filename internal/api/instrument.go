package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"directorybolt/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// requestMetrics records the duration of API requests per route pattern, both
// through OpenTelemetry and the service collectors.
type requestMetrics struct {
	duration metric.Float64Histogram
}

func newRequestMetrics(mp metric.MeterProvider) (*requestMetrics, error) {
	duration, err := mp.Meter("directorybolt/api").Float64Histogram(
		"http.server.request.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of v1 API requests."),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create request histogram: %w", err)
	}

	return &requestMetrics{duration: duration}, nil
}

func (m *requestMetrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		elapsed := time.Since(start)
		metrics.ObserveHTTPRequest(r.Method, route, status, elapsed)
		m.duration.Record(r.Context(), elapsed.Seconds(), metric.WithAttributes(
			attribute.String("http.request.method", r.Method),
			attribute.String("http.route", route),
			attribute.String("http.response.status_code", strconv.Itoa(status)),
		))
	})
}
