// Package api configures and exposes the HTTP server, routes, metrics, docs
// and related middleware of the DirectoryBolt backend.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"directorybolt/internal/api/handler/v1handler"
	"directorybolt/internal/config"
	"directorybolt/pkg/controller"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"riverqueue.com/riverui"
)

// v1Spec is the embedded OpenAPI document of the v1 API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// RiverUIPrefix is where the job queue dashboard is mounted.
const RiverUIPrefix = "/riverui"

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// SecHandlerOptions configures worker token verification.
	SecHandlerOptions *v1handler.SecHandlerOptions
	// HandlerOptions configures the v1 handlers.
	HandlerOptions v1handler.Options

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds the handling of a single API request.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins are the CORS origins.
	AllowedOrigins []string
	// EnablePprof mounts the profiling handlers.
	EnablePprof bool
	// Registry receives the OpenTelemetry collectors and serves MetricsPath.
	// The default Prometheus registry is used when nil.
	Registry *prometheus.Registry
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		HandlerOptions:    v1handler.NewOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		EnablePprof:       cfg.HTTP.EnablePprof,
	}
}

type Deps struct {
	v1handler.Deps

	// RiverClient backs the job queue dashboard; it is not mounted when nil.
	RiverClient *river.Client[pgx.Tx]
}

// NewRouter builds the HTTP routes:
//   - /healthz and /readyz health checks
//   - Prometheus metrics (MetricsPath) fed by the OpenTelemetry exporter
//   - embedded OpenAPI v1 document and Swagger UI
//   - the v1 API
//   - River UI for admins and, when enabled, pprof
func NewRouter(ctx context.Context, deps Deps, opts Options) (http.Handler, error) {
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if opts.Registry != nil {
		registerer, gatherer = opts.Registry, opts.Registry
	}

	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	instrument, err := newRequestMetrics(mp)
	if err != nil {
		return nil, err
	}

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions, deps.Auth, deps.Staff)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(controller.WithCORS(opts.AllowedOrigins))
	r.Use(controller.WithLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		controller.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Storage.Ping(r.Context()); err != nil {
			controller.WriteError(w, r, serrors.Wrap(serrors.ErrUnavailable, err, "database unavailable"))

			return
		}
		controller.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})
	r.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	r.Handle("/v1/docs/*", v5emb.New(
		"DirectoryBolt API",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	r.Route("/v1", func(r chi.Router) {
		r.Use(instrument.middleware)
		if opts.RequestTimeout > 0 {
			r.Use(middleware.Timeout(opts.RequestTimeout))
		}
		v1handler.New(deps.Deps, opts.HandlerOptions).Routes(r, secHandler)
	})

	if deps.RiverClient != nil {
		ui, err := riverui.NewHandler(&riverui.HandlerOpts{
			Endpoints: riverui.NewEndpoints(deps.RiverClient, nil),
			Logger:    logger.Slog(ctx),
			Prefix:    RiverUIPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create river ui: %w", err)
		}
		if err := ui.Start(ctx); err != nil {
			return nil, fmt.Errorf("could not start river ui: %w", err)
		}
		r.With(secHandler.RequireRole(domain.StaffRoleAdmin)).Mount(RiverUIPrefix, ui)
	}

	if opts.EnablePprof {
		r.Mount(controller.PprofPrefix, controller.PprofMux())
	}

	return r, nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewRouter(ctx, deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
