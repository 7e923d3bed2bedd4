package postgres

import (
	"context"
	"fmt"

	"directorybolt/pkg/domain"
	"directorybolt/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	customersTable = "customers"

	defaultPageSize uint = 50
)

// afterCursor matches rows that sort after c in (created_at, id) descending
// order.
func afterCursor(c storage.PageCursor) goqu.Expression {
	return goqu.L("(created_at, id) < (?, ?)", c.CreatedAt, c.ID)
}

func (p *PgSQL) CreateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	var row PgCustomer
	row.FromDomain(customer)

	var result PgCustomer
	if _, err := p.Builder.Insert(customersTable).
		Rows(row).
		Returning(&PgCustomer{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store customer into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) CustomerByID(ctx context.Context, id domain.CustomerID) (*domain.Customer, error) {
	var row PgCustomer
	found, err := p.Builder.From(customersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch customer by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateCustomer applies the non-nil fields of updates and returns the
// updated record, or nil when it does not exist.
func (p *PgSQL) UpdateCustomer(ctx context.Context,
	id domain.CustomerID,
	updates storage.CustomerUpdates) (*domain.Customer, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.UserID != nil {
		rec["user_id"] = uuid.UUID(*updates.UserID)
	}
	if updates.Tier != nil {
		rec["tier"] = string(*updates.Tier)
	}

	var row PgCustomer
	found, err := p.Builder.Update(customersTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgCustomer{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update customer in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ListCustomers pages through customers ordered by created_at DESC, id DESC.
func (p *PgSQL) ListCustomers(ctx context.Context, filter storage.CustomerFilter) (storage.CustomersPage, error) {
	if filter.Limit == 0 {
		filter.Limit = defaultPageSize
	}

	var w []goqu.Expression
	if filter.UserID != nil {
		w = append(w, goqu.I("user_id").Eq(uuid.UUID(*filter.UserID)))
	}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.Cursor != nil {
		w = append(w, afterCursor(*filter.Cursor))
	}

	ds := p.Builder.From(customersTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(filter.Limit + 1)
	if len(w) > 0 {
		ds = ds.Where(w...)
	}

	var rows []PgCustomer
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.CustomersPage{}, fmt.Errorf("could not list customers from pg: %w", err)
	}

	var nextCursor *storage.PageCursor
	if uint(len(rows)) > filter.Limit {
		rows = rows[:filter.Limit]
		last := rows[len(rows)-1]
		nextCursor = &storage.PageCursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	customers := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, *row.ToDomain())
	}

	return storage.CustomersPage{
		Customers:  customers,
		NextCursor: nextCursor,
	}, nil
}
