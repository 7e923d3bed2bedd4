package postgres

import (
	"context"
	"fmt"

	"directorybolt/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	staffUsersTable = "staff_users"
	apiKeysTable    = "api_keys"
)

func (p *PgSQL) CreateStaffUser(ctx context.Context, user domain.StaffUser) (*domain.StaffUser, error) {
	var row PgStaffUser
	if _, err := p.Builder.Insert(staffUsersTable).
		Rows(goqu.Record{
			"username":      user.Username,
			"password_hash": user.PasswordHash,
			"role":          string(user.Role),
		}).
		Returning(&PgStaffUser{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, wrapErr("could not store staff user into pg", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StaffUserByUsername(ctx context.Context, username string) (*domain.StaffUser, error) {
	var row PgStaffUser
	found, err := p.Builder.From(staffUsersTable).
		Where(goqu.I("username").Eq(username)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch staff user: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CreateAPIKey(ctx context.Context, key domain.APIKey) (*domain.APIKey, error) {
	var row PgAPIKey
	if _, err := p.Builder.Insert(apiKeysTable).
		Rows(goqu.Record{
			"name":     key.Name,
			"role":     string(key.Role),
			"key_hash": key.KeyHash,
		}).
		Returning(&PgAPIKey{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, wrapErr("could not store api key into pg", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) APIKeyByHash(ctx context.Context, keyHash string) (*domain.APIKey, error) {
	var row PgAPIKey
	found, err := p.Builder.From(apiKeysTable).
		Where(
			goqu.I("key_hash").Eq(keyHash),
			goqu.I("revoked_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch api key: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) TouchAPIKey(ctx context.Context, id uuid.UUID) error {
	if _, err := p.Builder.Update(apiKeysTable).
		Set(goqu.Record{"last_used_at": goqu.L("CURRENT_TIMESTAMP")}).
		Where(goqu.I("id").Eq(id)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not touch api key: %w", err)
	}

	return nil
}
