package domain

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseID uniquely identifies a purchase.
type PurchaseID uuid.UUID

// String returns the canonical textual form of the ID.
func (id PurchaseID) String() string { return uuid.UUID(id).String() }

// PurchaseStatus tracks payment of a purchase.
type PurchaseStatus string

const (
	PurchaseStatusPending PurchaseStatus = "pending"
	PurchaseStatusPaid    PurchaseStatus = "paid"
	PurchaseStatusFailed  PurchaseStatus = "failed"
)

// Purchase is a checkout for a tier.
type Purchase struct {
	ID         PurchaseID  `json:"id"`
	UserID     *UserID     `json:"userId,omitempty"`
	CustomerID *CustomerID `json:"customerId,omitempty"`
	Tier       Tier        `json:"tier"`

	AmountCents int64  `json:"amountCents"`
	Currency    string `json:"currency"`

	CheckoutSessionID string         `json:"checkoutSessionId,omitempty"`
	PaymentIntentID   string         `json:"-"`
	CustomerEmail     string         `json:"customerEmail"`
	Status            PurchaseStatus `json:"status"`

	PaidAt    time.Time `json:"paidAt,omitzero"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}
