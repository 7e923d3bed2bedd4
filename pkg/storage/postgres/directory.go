package postgres

import (
	"context"
	"fmt"
	"time"

	"directorybolt/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const directoriesTable = "directories"

// UpsertDirectories inserts the catalog entries, updating rows that already
// exist by id. Audit columns are not touched and a zero AuthorityCheckedAt
// keeps the stored one.
func (p *PgSQL) UpsertDirectories(ctx context.Context, directories ...domain.Directory) (int64, error) {
	if len(directories) == 0 {
		return 0, nil
	}

	rows := make([]PgDirectory, len(directories))
	for i := range rows {
		rows[i].FromDomain(directories[i])
	}

	res, err := p.Builder.Insert(directoriesTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"name":                  goqu.L("EXCLUDED.name"),
			"url":                   goqu.L("EXCLUDED.url"),
			"submission_url":        goqu.L("EXCLUDED.submission_url"),
			"category":              goqu.L("EXCLUDED.category"),
			"domain_authority":      goqu.L("EXCLUDED.domain_authority"),
			"difficulty":            goqu.L("EXCLUDED.difficulty"),
			"priority":              goqu.L("EXCLUDED.priority"),
			"tier":                  goqu.L("EXCLUDED.tier"),
			"traffic_potential":     goqu.L("EXCLUDED.traffic_potential"),
			"requires_registration": goqu.L("EXCLUDED.requires_registration"),
			"approval_time":         goqu.L("EXCLUDED.approval_time"),
			"has_captcha":           goqu.L("EXCLUDED.has_captcha"),
			"is_active":             goqu.L("EXCLUDED.is_active"),
			"authority_checked_at":  goqu.L("COALESCE(EXCLUDED.authority_checked_at, directories.authority_checked_at)"), //nolint: lll
			"updated_at":            goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not upsert directories into pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count upserted directories: %w", err)
	}

	return n, nil
}

func (p *PgSQL) DirectoryByID(ctx context.Context, id string) (*domain.Directory, error) {
	var row PgDirectory
	found, err := p.Builder.From(directoriesTable).
		Where(goqu.I("id").Eq(id)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch directory by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ListDirectories(ctx context.Context, activeOnly bool) ([]domain.Directory, error) {
	ds := p.Builder.From(directoriesTable).
		Order(goqu.I("domain_authority").Desc(), goqu.I("name").Asc())
	if activeOnly {
		ds = ds.Where(goqu.I("is_active").IsTrue())
	}

	var rows []PgDirectory
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list directories from pg: %w", err)
	}

	out := make([]domain.Directory, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out, nil
}

func (p *PgSQL) UpdateDirectoryAudit(ctx context.Context, id string, accessible bool, checkedAt time.Time) error {
	_, err := p.Builder.Update(directoriesTable).
		Set(goqu.Record{
			"accessible":       accessible,
			"last_verified_at": checkedAt,
		}).
		Where(goqu.I("id").Eq(id)).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update directory audit in pg: %w", err)
	}

	return nil
}
