package storage

import (
	"context"

	"directorybolt/pkg/domain"

	"github.com/google/uuid"
)

// StaffStorage persists operator accounts and API keys.
type StaffStorage interface {
	CreateStaffUser(ctx context.Context, user domain.StaffUser) (*domain.StaffUser, error)
	StaffUserByUsername(ctx context.Context, username string) (*domain.StaffUser, error)
	CreateAPIKey(ctx context.Context, key domain.APIKey) (*domain.APIKey, error)
	// APIKeyByHash returns the non-revoked key with the given hash.
	APIKeyByHash(ctx context.Context, keyHash string) (*domain.APIKey, error)
	TouchAPIKey(ctx context.Context, id uuid.UUID) error
}
