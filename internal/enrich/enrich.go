// Package enrich keeps directory authority scores fresh by looking them up in
// the SEO metrics provider from background jobs.
package enrich

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"directorybolt/internal/catalog"
	"directorybolt/internal/config"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/seometrics"
	"directorybolt/pkg/serrors"
	"directorybolt/pkg/storage"

	"go.uber.org/zap"
)

// Options configure how enrichment jobs are enqueued.
type Options struct {
	// MaxAttempts is the maximum number of attempts per job.
	MaxAttempts int
	// StaleAfter is the age after which an authority score is fetched again.
	// It is also the uniqueness window of enrichment jobs.
	StaleAfter time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts: 5,
		StaleAfter:  cfg.SEO.StaleAfter,
	}
}

type enricher struct {
	options Options
	storage storage.Storage
	client  seometrics.Client
	now     func() time.Time
}

func (e *enricher) Enqueue(ctx context.Context, directoryIDs ...string) (int, error) {
	added := 0
	for _, id := range directoryIDs {
		ok, err := e.storage.AddJob(ctx, JobArgs{
			DirectoryID:     id,
			maxAttempts:     e.options.MaxAttempts,
			uniqueJobPeriod: e.options.StaleAfter,
		}, nil)
		if err != nil {
			return added, fmt.Errorf("could not add job: %w", err)
		}
		if ok {
			added++
		}
	}

	return added, nil
}

func (e *enricher) EnqueueStale(ctx context.Context) (int, error) {
	dirs, err := e.storage.ListDirectories(ctx, true)
	if err != nil {
		return 0, fmt.Errorf("could not list directories: %w", err)
	}

	var ids []string
	for _, d := range dirs {
		if e.stale(d) {
			ids = append(ids, d.ID)
		}
	}

	added, err := e.Enqueue(ctx, ids...)
	if err != nil {
		return added, err
	}
	logger.Info(ctx, "enqueued stale directories", zap.Int("stale", len(ids)), zap.Int("added", added))

	return added, nil
}

func (e *enricher) stale(d domain.Directory) bool {
	return d.AuthorityCheckedAt.IsZero() || e.now().Sub(d.AuthorityCheckedAt) >= e.options.StaleAfter
}

func (e *enricher) Enrich(ctx context.Context, directoryID string) (seometrics.RateLimitStatus, error) {
	dir, err := e.storage.DirectoryByID(ctx, directoryID)
	if err != nil {
		return seometrics.RateLimitStatus{}, fmt.Errorf("could not get directory: %w", err)
	}
	if dir == nil {
		return seometrics.RateLimitStatus{}, serrors.With(serrors.ErrNotFound, "directory %s not found", directoryID)
	}
	if !e.stale(*dir) {
		logger.Debug(ctx, "authority is fresh", zap.Time("checkedAt", dir.AuthorityCheckedAt))

		return seometrics.RateLimitStatus{}, nil
	}

	target := Target(dir.URL)
	if target == "" {
		return seometrics.RateLimitStatus{}, serrors.With(serrors.ErrBadRequest, "directory %s has no usable url", directoryID)
	}

	metrics, rl, err := e.client.URLMetrics(ctx, target)
	if err != nil {
		return rl, fmt.Errorf("could not fetch metrics of %s: %w", target, err)
	}

	previous := dir.DomainAuthority
	dir.DomainAuthority = metrics.DomainAuthority
	dir.AuthorityCheckedAt = e.now().UTC()
	catalog.Derive(dir)

	if _, err := e.storage.UpsertDirectories(ctx, *dir); err != nil {
		return rl, fmt.Errorf("could not store directory: %w", err)
	}

	logger.Info(ctx, "directory enriched",
		zap.Int("previousAuthority", previous),
		zap.Int("authority", dir.DomainAuthority),
		zap.String("tier", string(dir.Tier)),
	)

	return rl, nil
}

// Target is the host the provider is asked about: the directory URL without
// scheme, credentials, port, path or a leading www.
func Target(rawURL string) string {
	u, err := url.Parse(catalog.NormalizeURL(rawURL))
	if err != nil {
		return ""
	}

	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// New creates an Enricher backed by the provided storage and metrics client.
func New(storage storage.Storage, client seometrics.Client, options Options) Enricher {
	return &enricher{
		options: options,
		storage: storage,
		client:  client,
		now:     time.Now,
	}
}
