package storage

import (
	"context"

	"directorybolt/pkg/domain"
)

// FormStorage persists submission page captures and detected changes.
type FormStorage interface {
	StoreFormSnapshot(ctx context.Context, snapshot domain.FormSnapshot) (*domain.FormSnapshot, error)
	// LatestFormSnapshot returns the newest successful capture of a site.
	LatestFormSnapshot(ctx context.Context, siteID string) (*domain.FormSnapshot, error)
	StoreFormChange(ctx context.Context, event domain.FormChangeEvent) (*domain.FormChangeEvent, error)
	// FormChanges returns the newest change events of a site.
	FormChanges(ctx context.Context, siteID string, limit uint) ([]domain.FormChangeEvent, error)
}
