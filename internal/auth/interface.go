package auth

import (
	"context"
	"time"

	"directorybolt/pkg/domain"
)

// SessionMeta describes the client a session is created for.
type SessionMeta struct {
	UserAgent string
	IP        string
}

// LoginResult is a new session. Token is only ever returned here; the
// database keeps its hash.
type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *domain.User `json:"user"`
}

// Principal is an authenticated operator.
type Principal struct {
	// Name is the staff username or the API key name.
	Name string
	Role domain.StaffRole
	// Fallback is set when the configured credentials were used because the
	// database could not be reached.
	Fallback bool
}

//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *
type Service interface {
	Register(ctx context.Context, email, password, fullName string) (*domain.User, error)
	Login(ctx context.Context, email, password string, meta SessionMeta) (*LoginResult, error)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context, token string) error
	PurgeExpired(ctx context.Context) (int64, error)
}

type StaffAuthenticator interface {
	AuthenticateAPIKey(ctx context.Context, key string) (*Principal, error)
	AuthenticateBasic(ctx context.Context, username, password string) (*Principal, error)
	CreateStaffUser(ctx context.Context, username, password string, role domain.StaffRole) (*domain.StaffUser, error)
	// CreateAPIKey returns the new key in clear text together with its record.
	CreateAPIKey(ctx context.Context, name string, role domain.StaffRole) (string, *domain.APIKey, error)
}
