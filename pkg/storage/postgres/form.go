package postgres

import (
	"context"
	"fmt"

	"directorybolt/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	formSnapshotsTable = "form_snapshots"
	formChangesTable   = "form_change_events"
)

func (p *PgSQL) StoreFormSnapshot(ctx context.Context, snapshot domain.FormSnapshot) (*domain.FormSnapshot, error) {
	var row PgFormSnapshot
	if err := row.FromDomain(snapshot); err != nil {
		return nil, err
	}

	var result PgFormSnapshot
	if _, err := p.Builder.Insert(formSnapshotsTable).
		Rows(row).
		Returning(&PgFormSnapshot{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store form snapshot into pg: %w", err)
	}

	return result.ToDomain()
}

func (p *PgSQL) LatestFormSnapshot(ctx context.Context, siteID string) (*domain.FormSnapshot, error) {
	var row PgFormSnapshot
	found, err := p.Builder.From(formSnapshotsTable).
		Where(
			goqu.I("site_id").Eq(siteID),
			goqu.I("status").Eq(string(domain.SnapshotStatusOK)),
		).
		Order(goqu.I("captured_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch latest form snapshot: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) StoreFormChange(ctx context.Context, event domain.FormChangeEvent) (*domain.FormChangeEvent, error) {
	var row PgFormChange
	if err := row.FromDomain(event); err != nil {
		return nil, err
	}

	var result PgFormChange
	if _, err := p.Builder.Insert(formChangesTable).
		Rows(row).
		Returning(&PgFormChange{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store form change into pg: %w", err)
	}

	return result.ToDomain()
}

func (p *PgSQL) FormChanges(ctx context.Context, siteID string, limit uint) ([]domain.FormChangeEvent, error) {
	if limit == 0 {
		limit = defaultPageSize
	}

	var rows []PgFormChange
	if err := p.Builder.From(formChangesTable).
		Where(goqu.I("site_id").Eq(siteID)).
		Order(goqu.I("detected_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch form changes: %w", err)
	}

	out := make([]domain.FormChangeEvent, 0, len(rows))
	for _, row := range rows {
		e, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}

	return out, nil
}
