// Package catalog serves the directory catalog: filtering and statistics for
// the API, and importing directory lists from JSON, markdown, CSV and XLSX
// files. When the database cannot be read, the embedded default catalog is
// served instead.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"directorybolt/pkg/domain"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/serrors"
	"directorybolt/pkg/storage"

	"go.uber.org/zap"
)

//go:embed defaults.json
var defaultsJSON []byte

// Defaults returns the embedded catalog.
var Defaults = sync.OnceValues(func() ([]domain.Directory, error) { //nolint: gochecknoglobals
	return Parse(Source{Name: "defaults.json", Format: FormatJSON, Data: defaultsJSON})
})

// ImportResult summarizes an import.
type ImportResult struct {
	Parsed     int   `json:"parsed"`
	Duplicates int   `json:"duplicates"`
	Upserted   int64 `json:"upserted"`
}

// Service is the catalog use case.
//
//go:generate mockgen -package mockcatalog -source=catalog.go -destination=mock/mockcatalog.go *
type Service interface {
	// List returns the active directories matching f.
	List(ctx context.Context, f Filter) (Page, error)
	Get(ctx context.Context, id string) (*domain.Directory, error)
	Stats(ctx context.Context) (Stats, error)
	// Import merges the sources in order and upserts the result.
	Import(ctx context.Context, sources ...Source) (ImportResult, error)
}

type service struct {
	storage storage.DirectoryStorage
}

func (s *service) active(ctx context.Context) ([]domain.Directory, error) {
	dirs, err := s.storage.ListDirectories(ctx, true)
	if err == nil {
		return dirs, nil
	}

	logger.Warn(ctx, "could not load directories, serving defaults", zap.Error(err))

	defaults, derr := Defaults()
	if derr != nil {
		return nil, fmt.Errorf("could not load default directories: %w", derr)
	}

	return defaults, nil
}

func (s *service) List(ctx context.Context, f Filter) (Page, error) {
	if !f.Sort.Valid() {
		return Page{}, serrors.With(serrors.ErrBadRequest, "unknown sort %q", f.Sort)
	}
	if f.MinDA != nil && f.MaxDA != nil && *f.MinDA > *f.MaxDA {
		return Page{}, serrors.With(serrors.ErrBadRequest, "minDA is greater than maxDA")
	}

	dirs, err := s.active(ctx)
	if err != nil {
		return Page{}, err
	}

	return Apply(dirs, f), nil
}

func (s *service) Get(ctx context.Context, id string) (*domain.Directory, error) {
	d, err := s.storage.DirectoryByID(ctx, id)
	if err != nil {
		logger.Warn(ctx, "could not load directory, serving defaults", zap.Error(err))

		defaults, derr := Defaults()
		if derr != nil {
			return nil, fmt.Errorf("could not load default directories: %w", derr)
		}
		for i := range defaults {
			if defaults[i].ID == id {
				found := defaults[i]
				d = &found

				break
			}
		}
	}
	if d == nil {
		return nil, serrors.With(serrors.ErrNotFound, "directory %q not found", id)
	}

	return d, nil
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	dirs, err := s.active(ctx)
	if err != nil {
		return Stats{}, err
	}

	return Summarize(dirs), nil
}

func (s *service) Import(ctx context.Context, sources ...Source) (ImportResult, error) {
	var (
		res    ImportResult
		parsed = make([][]domain.Directory, 0, len(sources))
	)

	for _, src := range sources {
		dirs, err := Parse(src)
		if err != nil {
			return res, serrors.Wrap(serrors.ErrBadRequest, err, "invalid source %s", src.Name)
		}
		logger.Info(ctx, "parsed catalog source", zap.String("source", src.Name), zap.Int("directories", len(dirs)))
		res.Parsed += len(dirs)
		parsed = append(parsed, dirs)
	}

	merged, duplicates := Merge(parsed...)
	res.Duplicates = duplicates
	if len(merged) == 0 {
		return res, nil
	}

	n, err := s.storage.UpsertDirectories(ctx, merged...)
	if err != nil {
		return res, fmt.Errorf("could not upsert directories: %w", err)
	}
	res.Upserted = n

	logger.Info(ctx, "catalog imported",
		zap.Int("parsed", res.Parsed),
		zap.Int("duplicates", res.Duplicates),
		zap.Int64("upserted", res.Upserted),
	)

	return res, nil
}

// New creates a catalog Service.
func New(storage storage.DirectoryStorage) Service {
	return &service{storage: storage}
}
