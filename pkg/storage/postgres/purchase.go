package postgres

import (
	"context"
	"fmt"

	"directorybolt/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const purchasesTable = "purchases"

func (p *PgSQL) CreatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error) {
	var row PgPurchase
	row.FromDomain(purchase)

	var result PgPurchase
	if _, err := p.Builder.Insert(purchasesTable).
		Rows(row).
		Returning(&PgPurchase{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, wrapErr("could not store purchase into pg", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) PurchaseByID(ctx context.Context, id domain.PurchaseID) (*domain.Purchase, error) {
	var row PgPurchase
	found, err := p.Builder.From(purchasesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch purchase by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) SetPurchaseCheckoutSession(ctx context.Context, id domain.PurchaseID, sessionID string) error {
	if _, err := p.Builder.Update(purchasesTable).
		Set(goqu.Record{
			"checkout_session_id": sessionID,
			"updated_at":          goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return wrapErr("could not set purchase checkout session", err)
	}

	return nil
}

// MarkPurchasePaid flips a purchase to paid exactly once. Replayed webhook
// deliveries get the stored purchase with changed set to false.
func (p *PgSQL) MarkPurchasePaid(ctx context.Context,
	id domain.PurchaseID,
	sessionID string,
	paymentIntentID string) (*domain.Purchase, bool, error) {
	rec := goqu.Record{
		"status":     string(domain.PurchaseStatusPaid),
		"paid_at":    goqu.L("CURRENT_TIMESTAMP"),
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if sessionID != "" {
		rec["checkout_session_id"] = sessionID
	}
	if paymentIntentID != "" {
		rec["payment_intent_id"] = paymentIntentID
	}

	var row PgPurchase
	found, err := p.Builder.Update(purchasesTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Neq(string(domain.PurchaseStatusPaid)),
		).
		Returning(&PgPurchase{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, false, wrapErr("could not mark purchase paid", err)
	}
	if found {
		return row.ToDomain(), true, nil
	}

	existing, err := p.PurchaseByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	return existing, false, nil
}

func (p *PgSQL) MarkPurchaseFailed(ctx context.Context, id domain.PurchaseID) (*domain.Purchase, error) {
	var row PgPurchase
	found, err := p.Builder.Update(purchasesTable).
		Set(goqu.Record{
			"status":     string(domain.PurchaseStatusFailed),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Eq(string(domain.PurchaseStatusPending)),
		).
		Returning(&PgPurchase{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not mark purchase failed: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) LinkPurchaseUser(ctx context.Context, id domain.PurchaseID, userID domain.UserID) error {
	if _, err := p.Builder.Update(purchasesTable).
		Set(goqu.Record{
			"user_id":    uuid.UUID(userID),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not link purchase user: %w", err)
	}

	return nil
}

// MarkPurchaseGranted sets granted_at once. Later calls find no row to update.
func (p *PgSQL) MarkPurchaseGranted(ctx context.Context, id domain.PurchaseID) (bool, error) {
	var row PgPurchase
	found, err := p.Builder.Update(purchasesTable).
		Set(goqu.Record{
			"granted_at": goqu.L("CURRENT_TIMESTAMP"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("granted_at").IsNull(),
		).
		Returning(&PgPurchase{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return false, fmt.Errorf("could not mark purchase granted: %w", err)
	}

	return found, nil
}
