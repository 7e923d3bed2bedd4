package storage

import (
	"context"
	"time"

	"directorybolt/pkg/domain"
)

// UserBillingUpdates describes billing fields set on a user after a purchase.
// Empty strings leave the stored value unchanged.
type UserBillingUpdates struct {
	Tier                 domain.Tier
	StripeCustomerID     string
	StripeSubscriptionID string
	SubscriptionStatus   string
	// CreditDirectories is subtracted from directories_used, never below zero.
	CreditDirectories int
}

// UserStorage persists accounts.
type UserStorage interface {
	// CreateUser inserts a user. The email must already be normalized.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateUserBilling applies billing updates and returns the updated row.
	UpdateUserBilling(ctx context.Context, id domain.UserID, updates UserBillingUpdates) (*domain.User, error)
	// ConsumeDirectories atomically adds n to directories_used as long as the
	// result stays within limit. It returns nil when the user does not exist or
	// the limit would be exceeded.
	ConsumeDirectories(ctx context.Context, id domain.UserID, n int, limit int) (*domain.User, error)
	// TouchUserLogin sets last_login_at.
	TouchUserLogin(ctx context.Context, id domain.UserID, at time.Time) error
}

// SessionStorage persists login sessions keyed by token hash.
type SessionStorage interface {
	CreateSession(ctx context.Context, session domain.Session) error
	SessionByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)
	DeleteSession(ctx context.Context, tokenHash string) error
	// DeleteExpiredSessions removes sessions expired at now and returns how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
