package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical textual form of the ID.
func (id UserID) String() string { return uuid.UUID(id).String() }

// User is an account identity. Tier and usage counters decide how many
// directory submissions the account may still queue.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`
	// Email is the lower-cased login email.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the password. Empty for accounts
	// created from a checkout that have not set a password yet.
	PasswordHash string `json:"-"`
	// FullName is the display name.
	FullName string `json:"fullName"`
	// Tier is the purchased package.
	Tier Tier `json:"tier"`

	// DirectoriesUsed counts directories already consumed by queued submissions.
	DirectoriesUsed int `json:"directoriesUsed"`
	// AnalysesUsed counts analyses run in the current period.
	AnalysesUsed int `json:"analysesUsed"`

	// StripeCustomerID links the user to the payment processor customer.
	StripeCustomerID string `json:"-"`
	// StripeSubscriptionID links the user to the payment processor subscription, if any.
	StripeSubscriptionID string `json:"-"`
	// SubscriptionStatus mirrors the payment processor subscription status.
	SubscriptionStatus string `json:"subscriptionStatus,omitempty"`

	LastLoginAt time.Time `json:"lastLoginAt,omitzero"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

// DirectoriesRemaining returns how many more directories the user may queue
// under the current tier. It never returns a negative number.
func (u User) DirectoriesRemaining() int {
	left := u.Tier.Limits().Directories - u.DirectoriesUsed
	if left < 0 {
		return 0
	}

	return left
}
