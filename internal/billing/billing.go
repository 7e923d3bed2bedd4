package billing

import (
	"context"
	"errors"
	"fmt"

	"directorybolt/internal/auth"
	"directorybolt/internal/config"
	"directorybolt/internal/queue"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/metrics"
	"directorybolt/pkg/payments"
	"directorybolt/pkg/serrors"
	"directorybolt/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	webhookApplied   = "applied"
	webhookDuplicate = "duplicate"
	webhookIgnored   = "ignored"
	webhookUnknown   = "unknown_purchase"
	webhookRejected  = "rejected"
)

// Options configure billing.
type Options struct {
	Currency string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{Currency: cfg.Payments.Currency}
}

type service struct {
	options  Options
	storage  storage.Storage
	provider payments.Provider
	queue    queue.Service
}

func (s *service) CreateCheckout(ctx context.Context, req CheckoutRequest) (*payments.Checkout, error) {
	tier, err := domain.ParseTier(req.Tier)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "unknown tier %q", req.Tier)
	}
	if !tier.Purchasable() {
		return nil, serrors.With(serrors.ErrBadRequest, "tier %s cannot be purchased", tier)
	}

	email := req.Email
	if req.UserID != nil {
		user, err := s.storage.UserByID(ctx, *req.UserID)
		if err != nil {
			return nil, fmt.Errorf("could not get user: %w", err)
		}
		if user == nil {
			return nil, serrors.With(serrors.ErrNotFound, "user not found")
		}
		if email == "" {
			email = user.Email
		}
	}
	if email == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "email is required")
	}
	if email, err = auth.NormalizeEmail(email); err != nil {
		return nil, err
	}

	if req.CustomerID != nil {
		customer, err := s.storage.CustomerByID(ctx, *req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("could not get customer: %w", err)
		}
		if customer == nil {
			return nil, serrors.With(serrors.ErrNotFound, "customer not found")
		}
		if customer.UserID != nil && (req.UserID == nil || *customer.UserID != *req.UserID) {
			return nil, serrors.With(serrors.ErrForbidden, "customer belongs to another account")
		}
	}

	purchase, err := s.storage.CreatePurchase(ctx, domain.Purchase{
		UserID:        req.UserID,
		CustomerID:    req.CustomerID,
		Tier:          tier,
		AmountCents:   tier.Limits().PriceCents,
		Currency:      s.options.Currency,
		CustomerEmail: email,
		Status:        domain.PurchaseStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create purchase: %w", err)
	}

	checkout, err := s.provider.CreateCheckout(ctx, payments.CheckoutRequest{
		PurchaseID:  purchase.ID,
		Tier:        tier,
		Email:       email,
		AmountCents: purchase.AmountCents,
		Currency:    purchase.Currency,
	})
	if err != nil {
		if _, ferr := s.storage.MarkPurchaseFailed(ctx, purchase.ID); ferr != nil {
			logger.Warn(ctx, "could not mark purchase failed", zap.Error(ferr))
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "payment provider unavailable")
	}

	if err := s.storage.SetPurchaseCheckoutSession(ctx, purchase.ID, checkout.ID); err != nil {
		return nil, fmt.Errorf("could not store checkout session: %w", err)
	}

	logger.Info(ctx, "checkout created",
		zap.Stringer("purchase_id", purchase.ID),
		zap.String("tier", string(tier)),
		zap.String("checkout_session_id", checkout.ID),
	)

	return checkout, nil
}

func (s *service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.provider.ParseWebhook(payload, signature)
	if errors.Is(err, payments.ErrInvalidSignature) {
		metrics.ObserveWebhookEvent("", webhookRejected)

		return serrors.Wrap(serrors.ErrUnauthorized, err, "invalid signature")
	}
	if err != nil {
		metrics.ObserveWebhookEvent("", webhookRejected)

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid event")
	}

	ctx = logger.WithFields(ctx,
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.String("purchase_id", event.PurchaseID),
	)

	result, err := s.applyEvent(ctx, event)
	metrics.ObserveWebhookEvent(string(event.Type), result)
	if err != nil {
		return err
	}

	logger.Info(ctx, "webhook event handled", zap.String("result", result))

	return nil
}

func (s *service) applyEvent(ctx context.Context, event *payments.Event) (string, error) {
	switch event.Type {
	case payments.EventCheckoutCompleted, payments.EventCheckoutExpired, payments.EventPaymentFailed:
	default:
		return webhookIgnored, nil
	}

	if event.PurchaseID == "" {
		return webhookIgnored, nil
	}
	parsed, err := uuid.Parse(event.PurchaseID)
	if err != nil {
		logger.Warn(ctx, "event references a malformed purchase id")

		return webhookIgnored, nil
	}
	id := domain.PurchaseID(parsed)

	if event.Type == payments.EventCheckoutCompleted {
		return s.markPaid(ctx, id, event)
	}

	return s.markFailed(ctx, id)
}

func (s *service) markPaid(ctx context.Context, id domain.PurchaseID, event *payments.Event) (string, error) {
	result := webhookApplied
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		purchase, changed, err := tx.MarkPurchasePaid(ctx, id, event.CheckoutSessionID, event.PaymentIntentID)
		if err != nil {
			return fmt.Errorf("could not mark purchase paid: %w", err)
		}
		if purchase == nil {
			result = webhookUnknown

			return serrors.With(serrors.ErrNotFound, "purchase not found")
		}
		if !changed {
			result = webhookDuplicate

			return nil
		}

		if _, err := tx.AddJob(ctx, FulfilArgs{
			PurchaseID:       purchase.ID.String(),
			Email:            event.Email,
			StripeCustomerID: event.ProcessorCustomer,
		}, nil); err != nil {
			return fmt.Errorf("could not enqueue fulfilment: %w", err)
		}

		return nil
	})

	return result, err
}

func (s *service) markFailed(ctx context.Context, id domain.PurchaseID) (string, error) {
	purchase, err := s.storage.MarkPurchaseFailed(ctx, id)
	if err != nil {
		return webhookApplied, fmt.Errorf("could not mark purchase failed: %w", err)
	}
	if purchase != nil {
		return webhookApplied, nil
	}

	// either unknown or no longer pending
	existing, err := s.storage.PurchaseByID(ctx, id)
	if err != nil {
		return webhookApplied, fmt.Errorf("could not get purchase: %w", err)
	}
	if existing == nil {
		return webhookUnknown, serrors.With(serrors.ErrNotFound, "purchase not found")
	}

	return webhookDuplicate, nil
}

func (s *service) Fulfil(ctx context.Context, args FulfilArgs) error {
	parsed, err := uuid.Parse(args.PurchaseID)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid purchase id")
	}

	purchase, err := s.storage.PurchaseByID(ctx, domain.PurchaseID(parsed))
	if err != nil {
		return fmt.Errorf("could not get purchase: %w", err)
	}
	if purchase == nil {
		return serrors.With(serrors.ErrNotFound, "purchase not found")
	}
	if purchase.Status != domain.PurchaseStatusPaid {
		return serrors.With(serrors.ErrConflict, "purchase is %s, not paid", purchase.Status)
	}

	ctx = logger.WithFields(ctx, zap.Stringer("purchase_id", purchase.ID))

	user, err := s.accountFor(ctx, purchase, args.Email)
	if err != nil {
		return err
	}
	if purchase.UserID == nil {
		if err := s.storage.LinkPurchaseUser(ctx, purchase.ID, user.ID); err != nil {
			return fmt.Errorf("could not link purchase: %w", err)
		}
	}

	if err := s.grant(ctx, purchase, user, args.StripeCustomerID); err != nil {
		return err
	}

	if purchase.CustomerID == nil {
		logger.Info(ctx, "purchase fulfilled", zap.Stringer("user_id", user.ID))

		return nil
	}

	if _, err := s.storage.UpdateCustomer(ctx, *purchase.CustomerID, storage.CustomerUpdates{
		UserID: &user.ID,
		Tier:   &purchase.Tier,
	}); err != nil {
		return fmt.Errorf("could not update customer: %w", err)
	}

	job, err := s.queue.Enqueue(ctx, *purchase.CustomerID)
	if errors.Is(err, serrors.ErrConflict) {
		logger.Info(ctx, "customer already queued", zap.Stringer("customer_id", *purchase.CustomerID))

		return nil
	}
	if err != nil {
		return fmt.Errorf("could not enqueue customer: %w", err)
	}

	logger.Info(ctx, "purchase fulfilled",
		zap.Stringer("user_id", user.ID),
		zap.Stringer("queue_job_id", job.ID),
	)

	return nil
}

// grant applies a paid purchase to the account. A purchase never downgrades
// the tier, and its directory allowance is credited back to the account's
// usage exactly once, so buying a package again after using it up queues
// another batch.
func (s *service) grant(ctx context.Context, purchase *domain.Purchase, user *domain.User, stripeCustomerID string) error {
	updates := storage.UserBillingUpdates{StripeCustomerID: stripeCustomerID}
	if purchase.Tier.Limits().PriorityLevel < user.Tier.Limits().PriorityLevel {
		updates.Tier = purchase.Tier
	}

	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		first, err := tx.MarkPurchaseGranted(ctx, purchase.ID)
		if err != nil {
			return fmt.Errorf("could not mark purchase granted: %w", err)
		}
		if first {
			updates.CreditDirectories = purchase.Tier.Limits().Directories
		}

		if _, err := tx.UpdateUserBilling(ctx, user.ID, updates); err != nil {
			return fmt.Errorf("could not update user billing: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("could not grant purchase: %w", err)
	}

	return nil
}

// accountFor returns the account a purchase is granted to, creating a
// passwordless one for first-time buyers.
func (s *service) accountFor(ctx context.Context, purchase *domain.Purchase, eventEmail string) (*domain.User, error) {
	if purchase.UserID != nil {
		user, err := s.storage.UserByID(ctx, *purchase.UserID)
		if err != nil {
			return nil, fmt.Errorf("could not get user: %w", err)
		}
		if user == nil {
			return nil, serrors.With(serrors.ErrNotFound, "user not found")
		}

		return user, nil
	}

	email := purchase.CustomerEmail
	if email == "" {
		email = eventEmail
	}
	email, err := auth.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	user, err = s.storage.CreateUser(ctx, domain.User{Email: email, Tier: domain.TierFree})
	if errors.Is(err, storage.ErrDuplicate) {
		user, err = s.storage.UserByEmail(ctx, email)
	}
	if err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s vanished after create", email)
	}
	logger.Info(ctx, "account created for purchase", zap.Stringer("user_id", user.ID))

	return user, nil
}

// New creates a billing Service.
func New(storage storage.Storage, provider payments.Provider, queue queue.Service, options Options) Service {
	return &service{
		options:  options,
		storage:  storage,
		provider: provider,
		queue:    queue,
	}
}
