package storage

import (
	"context"
	"time"

	"directorybolt/pkg/domain"
)

// DirectoryStorage persists the directory catalog.
type DirectoryStorage interface {
	// UpsertDirectories inserts directories or updates existing ones by ID,
	// returning the number of affected rows. Audit results are left untouched.
	UpsertDirectories(ctx context.Context, directories ...domain.Directory) (int64, error)
	DirectoryByID(ctx context.Context, id string) (*domain.Directory, error)
	// ListDirectories returns the catalog ordered by domain authority, highest first.
	ListDirectories(ctx context.Context, activeOnly bool) ([]domain.Directory, error)
	// UpdateDirectoryAudit stores the result of a URL accessibility check.
	UpdateDirectoryAudit(ctx context.Context, id string, accessible bool, checkedAt time.Time) error
}
