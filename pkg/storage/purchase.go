package storage

import (
	"context"

	"directorybolt/pkg/domain"
)

// PurchaseStorage persists checkouts.
type PurchaseStorage interface {
	CreatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error)
	PurchaseByID(ctx context.Context, id domain.PurchaseID) (*domain.Purchase, error)
	// SetPurchaseCheckoutSession stores the processor checkout session of a purchase.
	SetPurchaseCheckoutSession(ctx context.Context, id domain.PurchaseID, sessionID string) error
	// MarkPurchasePaid marks a pending purchase paid. The boolean is false when
	// the purchase was already paid; the purchase is nil when it does not exist.
	MarkPurchasePaid(ctx context.Context, id domain.PurchaseID, sessionID string, paymentIntentID string) (*domain.Purchase, bool, error) //nolint: lll
	// MarkPurchaseFailed marks a pending purchase failed. It returns nil when
	// the purchase does not exist or is not pending.
	MarkPurchaseFailed(ctx context.Context, id domain.PurchaseID) (*domain.Purchase, error)
	LinkPurchaseUser(ctx context.Context, id domain.PurchaseID, userID domain.UserID) error
	// MarkPurchaseGranted records that the allowance of a paid purchase was
	// credited. It returns false when that already happened.
	MarkPurchaseGranted(ctx context.Context, id domain.PurchaseID) (bool, error)
}
