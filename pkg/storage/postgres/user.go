package postgres

import (
	"context"
	"fmt"
	"time"

	"directorybolt/pkg/domain"
	"directorybolt/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	usersTable    = "users"
	sessionsTable = "sessions"
)

func (p *PgSQL) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var result PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, wrapErr("could not store user into pg", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("email").Eq(email))
}

func (p *PgSQL) userWhere(ctx context.Context, cond goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(cond).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateUserBilling sets the tier and the payment processor references of a
// user. Empty fields keep their stored value.
func (p *PgSQL) UpdateUserBilling(ctx context.Context,
	id domain.UserID,
	updates storage.UserBillingUpdates) (*domain.User, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Tier != "" {
		rec["tier"] = string(updates.Tier)
	}
	if updates.StripeCustomerID != "" {
		rec["stripe_customer_id"] = updates.StripeCustomerID
	}
	if updates.StripeSubscriptionID != "" {
		rec["stripe_subscription_id"] = updates.StripeSubscriptionID
	}
	if updates.SubscriptionStatus != "" {
		rec["subscription_status"] = updates.SubscriptionStatus
	}
	if updates.CreditDirectories > 0 {
		rec["directories_used"] = goqu.L("GREATEST(directories_used - ?, 0)", updates.CreditDirectories)
	}

	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update user billing in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ConsumeDirectories adds n to the directory usage of a user in a single
// conditional update, so concurrent consumers can never exceed limit.
func (p *PgSQL) ConsumeDirectories(ctx context.Context, id domain.UserID, n int, limit int) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(goqu.Record{
			"directories_used": goqu.L("directories_used + ?", n),
			"updated_at":       goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.L("directories_used + ? <= ?", n, limit),
		).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not consume directories in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) TouchUserLogin(ctx context.Context, id domain.UserID, at time.Time) error {
	_, err := p.Builder.Update(usersTable).
		Set(goqu.Record{"last_login_at": at}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not touch user login in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) CreateSession(ctx context.Context, session domain.Session) error {
	var row PgSession
	row.FromDomain(session)

	if _, err := p.Builder.Insert(sessionsTable).Rows(row).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store session into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) SessionByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	var row PgSession
	found, err := p.Builder.From(sessionsTable).
		Where(goqu.I("token_hash").Eq(tokenHash)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch session: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteSession(ctx context.Context, tokenHash string) error {
	if _, err := p.Builder.Delete(sessionsTable).
		Where(goqu.I("token_hash").Eq(tokenHash)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete session: %w", err)
	}

	return nil
}

func (p *PgSQL) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := p.Builder.Delete(sessionsTable).
		Where(goqu.I("expires_at").Lte(now)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete expired sessions: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count deleted sessions: %w", err)
	}

	return n, nil
}
