// Package billing sells tiers through the hosted checkout and turns verified
// payment webhooks into account upgrades and queued submissions.
package billing

import (
	"context"

	"directorybolt/pkg/domain"
	"directorybolt/pkg/payments"
)

// CheckoutRequest is a request to buy a tier. Email is optional when UserID
// is set; CustomerID links the purchase to a business record that is queued
// once the payment clears.
type CheckoutRequest struct {
	Tier       string
	Email      string
	CustomerID *domain.CustomerID
	UserID     *domain.UserID
}

// Service is the billing use case.
//
//go:generate mockgen -package mockbilling -source=interface.go -destination=mock/mockbilling.go *
type Service interface {
	// CreateCheckout records a pending purchase and opens a hosted checkout for it.
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*payments.Checkout, error)
	// HandleWebhook verifies and applies a payment processor event. Repeated
	// events are acknowledged without side effects.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	// Fulfil grants a paid purchase to its account and queues its business
	// record, if any.
	Fulfil(ctx context.Context, args FulfilArgs) error
}
