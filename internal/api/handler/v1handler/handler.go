// Package v1handler implements the /v1 HTTP API.
package v1handler

import (
	"net/http"
	"strconv"

	"directorybolt/internal/analytics"
	"directorybolt/internal/auth"
	"directorybolt/internal/billing"
	"directorybolt/internal/catalog"
	"directorybolt/internal/config"
	"directorybolt/internal/queue"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/serrors"
	"directorybolt/pkg/storage"

	"github.com/go-chi/chi/v5"
)

const (
	// DefaultLimit is the page size of list endpoints without a limit.
	DefaultLimit = 20
	// MaxLimit caps the page size of list endpoints.
	MaxLimit = 100
)

// Deps are the services behind the API.
type Deps struct {
	Storage   storage.Storage
	Auth      auth.Service
	Staff     auth.StaffAuthenticator
	Queue     queue.Service
	Billing   billing.Service
	Catalog   catalog.Service
	Analytics analytics.Tracker
}

// Options configure request handling.
type Options struct {
	// MaxBodyBytes limits JSON and webhook request bodies.
	MaxBodyBytes int64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxBodyBytes: cfg.HTTP.MaxBodyBytes}
}

type Handler struct {
	deps    Deps
	options Options
}

func New(deps Deps, options Options) *Handler {
	return &Handler{deps: deps, options: options}
}

// Routes registers the /v1 endpoints on r. Routes are relative to the mount
// point.
func (h *Handler) Routes(r chi.Router, sec *SecHandler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.With(sec.RequireSession).Post("/logout", h.Logout)
		r.With(sec.RequireSession).Get("/me", h.Me)
	})

	r.Route("/directories", func(r chi.Router) {
		r.Get("/", h.ListDirectories)
		r.Get("/stats", h.DirectoryStats)
		r.Get("/{id}", h.GetDirectory)
	})

	r.With(sec.OptionalSession).Post("/checkout", h.CreateCheckout)
	r.Post("/webhooks/stripe", h.StripeWebhook)
	r.With(sec.OptionalSession).Post("/analytics/events", h.TrackEvents)

	r.Route("/customers", func(r chi.Router) {
		r.Use(sec.RequireSession)
		r.Post("/", h.CreateCustomer)
		r.Get("/{id}", h.GetCustomer)
	})

	r.Route("/autobolt/jobs", func(r chi.Router) {
		r.Use(sec.RequireWorker)
		r.Post("/next", h.NextJob)
		r.Post("/{id}/complete", h.CompleteJob)
		r.Post("/{id}/progress", h.JobProgress)
	})

	staffRoutes := func(r chi.Router) {
		r.Get("/queue", h.ListQueue)
		r.Get("/queue/stats", h.QueueStats)
		r.Get("/queue/{id}", h.GetQueueJob)
		r.Post("/queue", h.EnqueueCustomer)
	}
	r.Route("/staff", func(r chi.Router) {
		r.Use(sec.RequireRole(domain.StaffRoleStaff))
		staffRoutes(r)
	})
	r.Route("/admin", func(r chi.Router) {
		r.Use(sec.RequireRole(domain.StaffRoleAdmin))
		staffRoutes(r)
		r.Post("/queue/{id}/retry", h.RetryQueueJob)
		r.Get("/customers", h.ListCustomers)
		r.Get("/directories/{id}/changes", h.DirectoryChanges)
	})
}

// limitParam parses the limit query parameter, defaulting to DefaultLimit.
func limitParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return DefaultLimit, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > MaxLimit {
		return 0, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxLimit)
	}

	return n, nil
}
