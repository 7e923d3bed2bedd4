// Package stripepay implements payments.Provider on Stripe Checkout.
package stripepay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"directorybolt/internal/config"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/payments"

	"github.com/go-faster/errors"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	metadataPurchaseID = "purchase_id"
	metadataTier       = "tier"
)

// Options configure the Stripe client.
type Options struct {
	SecretKey        string
	WebhookSecret    string
	WebhookTolerance time.Duration
	SuccessURL       string
	CancelURL        string
	// Prices maps a tier to a Stripe price id. Tiers without one are charged
	// with inline price data.
	Prices map[string]string
	// BaseURL overrides the API base URL.
	BaseURL    string
	HTTPClient *http.Client
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecretKey:        cfg.Payments.SecretKey,
		WebhookSecret:    cfg.Payments.WebhookSecret,
		WebhookTolerance: cfg.Payments.WebhookTolerance,
		SuccessURL:       cfg.Payments.SuccessURL,
		CancelURL:        cfg.Payments.CancelURL,
		Prices:           cfg.Payments.Prices,
	}
}

// Client is a Stripe backed payments.Provider.
type Client struct {
	options  Options
	sessions session.Client
}

var _ payments.Provider = (*Client)(nil)

// New creates a Stripe client. Errors of the Stripe SDK are logged through
// the logger carried by ctx.
func New(ctx context.Context, options Options) *Client {
	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	backendConfig := &stripe.BackendConfig{
		HTTPClient:    httpClient,
		LeveledLogger: logger.Get(ctx).Named("stripe").Sugar(),
	}
	if options.BaseURL != "" {
		backendConfig.URL = stripe.String(options.BaseURL)
	}

	return &Client{
		options: options,
		sessions: session.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
			Key: options.SecretKey,
		},
	}
}

func (c *Client) CreateCheckout(ctx context.Context, req payments.CheckoutRequest) (*payments.Checkout, error) {
	purchaseID := req.PurchaseID.String()

	item := &stripe.CheckoutSessionLineItemParams{Quantity: stripe.Int64(1)}
	if price := c.options.Prices[string(req.Tier)]; price != "" {
		item.Price = stripe.String(price)
	} else {
		item.PriceData = &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:   stripe.String(req.Currency),
			UnitAmount: stripe.Int64(req.AmountCents),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(productName(req.Tier)),
			},
		}
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(purchaseID),
		SuccessURL:        stripe.String(c.options.SuccessURL),
		CancelURL:         stripe.String(c.options.CancelURL),
		LineItems:         []*stripe.CheckoutSessionLineItemParams{item},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{metadataPurchaseID: purchaseID},
		},
	}
	if req.Email != "" {
		params.CustomerEmail = stripe.String(req.Email)
	}
	params.AddMetadata(metadataPurchaseID, purchaseID)
	params.AddMetadata(metadataTier, string(req.Tier))
	params.Context = ctx
	params.SetIdempotencyKey("checkout-" + purchaseID)

	s, err := c.sessions.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "create checkout session")
	}

	return &payments.Checkout{ID: s.ID, URL: s.URL}, nil
}

func (c *Client) ParseWebhook(payload []byte, signature string) (*payments.Event, error) {
	ev, err := webhook.ConstructEventWithOptions(payload, signature, c.options.WebhookSecret,
		webhook.ConstructEventOptions{
			Tolerance:                c.options.WebhookTolerance,
			IgnoreAPIVersionMismatch: true,
		})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", payments.ErrInvalidSignature, err)
	}

	out := &payments.Event{ID: ev.ID, Type: payments.EventType(ev.Type)}
	if ev.Data == nil {
		return out, nil
	}

	switch ev.Type {
	case stripe.EventTypeCheckoutSessionCompleted, stripe.EventTypeCheckoutSessionExpired:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(ev.Data.Raw, &s); err != nil {
			return nil, errors.Wrap(err, "decode checkout session")
		}
		out.CheckoutSessionID = s.ID
		out.PurchaseID = s.ClientReferenceID
		if out.PurchaseID == "" {
			out.PurchaseID = s.Metadata[metadataPurchaseID]
		}
		if s.PaymentIntent != nil {
			out.PaymentIntentID = s.PaymentIntent.ID
		}
		if s.Customer != nil {
			out.ProcessorCustomer = s.Customer.ID
		}
		out.Email = s.CustomerEmail
		if s.CustomerDetails != nil && s.CustomerDetails.Email != "" {
			out.Email = s.CustomerDetails.Email
		}
	case stripe.EventTypePaymentIntentPaymentFailed:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(ev.Data.Raw, &pi); err != nil {
			return nil, errors.Wrap(err, "decode payment intent")
		}
		out.PaymentIntentID = pi.ID
		out.PurchaseID = pi.Metadata[metadataPurchaseID]
		if pi.Customer != nil {
			out.ProcessorCustomer = pi.Customer.ID
		}
	}

	return out, nil
}

func productName(tier domain.Tier) string {
	return fmt.Sprintf("DirectoryBolt %s package", tier)
}
