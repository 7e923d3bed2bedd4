// Package payments defines the hosted checkout and webhook abstraction used
// by billing, independent of the payment processor.
package payments

import (
	"context"
	"errors"

	"directorybolt/pkg/domain"
)

// ErrInvalidSignature is returned when a webhook payload fails verification.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// CheckoutRequest describes a hosted checkout for one purchase.
type CheckoutRequest struct {
	PurchaseID  domain.PurchaseID
	Tier        domain.Tier
	Email       string
	AmountCents int64
	Currency    string
}

// Checkout is a created hosted checkout session.
type Checkout struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// EventType is a normalized webhook event type.
type EventType string

const (
	EventCheckoutCompleted EventType = "checkout.session.completed"
	EventCheckoutExpired   EventType = "checkout.session.expired"
	EventPaymentFailed     EventType = "payment_intent.payment_failed"
)

// Event is a verified webhook event. Fields not carried by the event type are
// left empty.
type Event struct {
	ID   string
	Type EventType
	// PurchaseID is the purchase the event refers to; empty when the event
	// does not reference one of ours.
	PurchaseID        string
	CheckoutSessionID string
	PaymentIntentID   string
	ProcessorCustomer string
	Email             string
}

// Provider creates checkouts and verifies webhooks.
//
//go:generate mockgen -package mockpayments -source=interface.go -destination=mock/mockpayments.go *
type Provider interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error)
	// ParseWebhook verifies the signature header and decodes the event. It
	// returns ErrInvalidSignature when verification fails.
	ParseWebhook(payload []byte, signature string) (*Event, error)
}
