package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"directorybolt/pkg/domain"
	"directorybolt/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	queueTable       = "autobolt_processing_queue"
	submissionsTable = "directory_submissions"

	staleJobError = "exceeded max attempts"
)

func (p *PgSQL) CreateQueueJob(ctx context.Context, job domain.QueueJob) (*domain.QueueJob, error) {
	var row PgQueueJob
	row.FromDomain(job)

	var result PgQueueJob
	if _, err := p.Builder.Insert(queueTable).
		Rows(row).
		Returning(&PgQueueJob{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, wrapErr("could not store queue job into pg", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) QueueJobByID(ctx context.Context, id domain.QueueJobID) (*domain.QueueJob, error) {
	return p.queueJobWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) ActiveQueueJobByCustomer(ctx context.Context, customerID domain.CustomerID) (*domain.QueueJob, error) {
	return p.queueJobWhere(ctx,
		goqu.I("customer_id").Eq(uuid.UUID(customerID)),
		goqu.I("status").In(
			string(domain.QueueJobStatusQueued),
			string(domain.QueueJobStatusProcessing),
		),
	)
}

func (p *PgSQL) queueJobWhere(ctx context.Context, cond ...goqu.Expression) (*domain.QueueJob, error) {
	var row PgQueueJob
	found, err := p.Builder.From(queueTable).
		Where(cond...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch queue job: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ClaimNextQueueJob calls get_next_job_in_queue. Concurrent callers never
// receive the same job.
func (p *PgSQL) ClaimNextQueueJob(ctx context.Context) (*domain.QueueJob, error) {
	var row PgQueueJob
	found, err := p.Builder.ScanStructContext(ctx, &row, "SELECT * FROM get_next_job_in_queue()")
	if err != nil {
		return nil, fmt.Errorf("could not claim queue job: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// CompleteQueueJob calls complete_autobolt_job. Statuses other than completed
// and failed are rejected by the database with storage.ErrInvalidArgument.
func (p *PgSQL) CompleteQueueJob(ctx context.Context,
	id domain.QueueJobID,
	status domain.QueueJobStatus,
	errMsg string) (*domain.QueueJob, error) {
	var row PgQueueJob
	found, err := p.Builder.ScanStructContext(ctx, &row,
		"SELECT * FROM complete_autobolt_job($1, $2, $3)",
		uuid.UUID(id), string(status), errMsg)
	if err != nil {
		return nil, wrapErr("could not complete queue job", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateJobProgress calls update_job_progress.
func (p *PgSQL) UpdateJobProgress(ctx context.Context, progress domain.JobProgress) (*domain.Submission, error) {
	var row PgSubmission
	found, err := p.Builder.ScanStructContext(ctx, &row,
		"SELECT * FROM update_job_progress($1, $2, $3, $4, $5)",
		uuid.UUID(progress.JobID),
		progress.DirectoryName,
		string(progress.Status),
		progress.URL,
		progress.Error)
	if err != nil {
		return nil, wrapErr("could not update job progress", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) JobSubmissions(ctx context.Context, id domain.QueueJobID) ([]domain.Submission, error) {
	var rows []PgSubmission
	if err := p.Builder.From(submissionsTable).
		Where(goqu.I("job_id").Eq(uuid.UUID(id))).
		Order(goqu.I("created_at").Asc(), goqu.I("directory_name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch job submissions: %w", err)
	}

	out := make([]domain.Submission, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out, nil
}

// ListQueueJobs pages through jobs ordered by created_at DESC, id DESC.
func (p *PgSQL) ListQueueJobs(ctx context.Context, filter storage.QueueFilter) (storage.QueueJobsPage, error) {
	if filter.Limit == 0 {
		filter.Limit = defaultPageSize
	}

	var w []goqu.Expression
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.Cursor != nil {
		w = append(w, afterCursor(*filter.Cursor))
	}

	ds := p.Builder.From(queueTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(filter.Limit + 1)
	if len(w) > 0 {
		ds = ds.Where(w...)
	}

	var rows []PgQueueJob
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.QueueJobsPage{}, fmt.Errorf("could not list queue jobs from pg: %w", err)
	}

	var nextCursor *storage.PageCursor
	if uint(len(rows)) > filter.Limit {
		rows = rows[:filter.Limit]
		last := rows[len(rows)-1]
		nextCursor = &storage.PageCursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	return storage.QueueJobsPage{
		Jobs:       pgQueueJobsToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

type statusCount struct {
	Status string `db:"status"`
	Count  int64  `db:"count"`
}

func (p *PgSQL) countByStatus(ctx context.Context, table string) ([]statusCount, error) {
	var rows []statusCount
	if err := p.Builder.From(table).
		Select(goqu.I("status"), goqu.COUNT("*").As("count")).
		GroupBy(goqu.I("status")).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not count %s by status: %w", table, err)
	}

	return rows, nil
}

func (p *PgSQL) QueueStats(ctx context.Context) (domain.QueueStats, error) {
	stats := domain.QueueStats{
		Jobs:        map[domain.QueueJobStatus]int64{},
		Submissions: map[domain.SubmissionStatus]int64{},
	}

	jobs, err := p.countByStatus(ctx, queueTable)
	if err != nil {
		return domain.QueueStats{}, err
	}
	for _, c := range jobs {
		stats.Jobs[domain.QueueJobStatus(c.Status)] = c.Count
	}

	subs, err := p.countByStatus(ctx, submissionsTable)
	if err != nil {
		return domain.QueueStats{}, err
	}
	for _, c := range subs {
		stats.Submissions[domain.SubmissionStatus(c.Status)] = c.Count
	}

	var oldest sql.NullTime
	if _, err := p.Builder.From(queueTable).
		Select(goqu.MIN("created_at")).
		Where(goqu.I("status").Eq(string(domain.QueueJobStatusQueued))).
		Executor().ScanValContext(ctx, &oldest); err != nil {
		return domain.QueueStats{}, fmt.Errorf("could not fetch oldest queued job: %w", err)
	}
	stats.OldestQueuedAt = oldest.Time

	return stats, nil
}

// RetryQueueJob moves a failed job back to queued. A duplicate error means the
// customer already has another active job.
func (p *PgSQL) RetryQueueJob(ctx context.Context, id domain.QueueJobID) (*domain.QueueJob, error) {
	var row PgQueueJob
	found, err := p.Builder.Update(queueTable).
		Set(goqu.Record{
			"status":        string(domain.QueueJobStatusQueued),
			"error_message": nil,
			"started_at":    nil,
			"completed_at":  nil,
			"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Eq(string(domain.QueueJobStatusFailed)),
		).
		Returning(&PgQueueJob{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapErr("could not retry queue job", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// RequeueStaleQueueJobs releases processing jobs started before startedBefore.
// Jobs that were already claimed maxAttempts times fail instead. Customer
// statuses follow their jobs.
func (p *PgSQL) RequeueStaleQueueJobs(ctx context.Context,
	startedBefore time.Time,
	maxAttempts int) (storage.StaleRequeueResult, error) {
	var result storage.StaleRequeueResult

	stale := []goqu.Expression{
		goqu.I("status").Eq(string(domain.QueueJobStatusProcessing)),
		goqu.I("started_at").Lt(startedBefore),
	}

	var failed []uuid.UUID
	if err := p.Builder.Update(queueTable).
		Set(goqu.Record{
			"status":        string(domain.QueueJobStatusFailed),
			"error_message": staleJobError,
			"completed_at":  goqu.L("CURRENT_TIMESTAMP"),
			"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(append(stale, goqu.I("attempts").Gte(maxAttempts))...).
		Returning(goqu.I("customer_id")).
		Executor().ScanValsContext(ctx, &failed); err != nil {
		return result, fmt.Errorf("could not fail stale queue jobs: %w", err)
	}
	if err := p.setCustomersStatus(ctx, failed, domain.CustomerStatusFailed); err != nil {
		return result, err
	}
	result.Failed = int64(len(failed))

	var requeued []uuid.UUID
	if err := p.Builder.Update(queueTable).
		Set(goqu.Record{
			"status":     string(domain.QueueJobStatusQueued),
			"started_at": nil,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(append(stale, goqu.I("attempts").Lt(maxAttempts))...).
		Returning(goqu.I("customer_id")).
		Executor().ScanValsContext(ctx, &requeued); err != nil {
		return result, fmt.Errorf("could not requeue stale queue jobs: %w", err)
	}
	if err := p.setCustomersStatus(ctx, requeued, domain.CustomerStatusQueued); err != nil {
		return result, err
	}
	result.Requeued = int64(len(requeued))

	return result, nil
}

func (p *PgSQL) setCustomersStatus(ctx context.Context, ids []uuid.UUID, status domain.CustomerStatus) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := p.Builder.Update(customersTable).
		Set(goqu.Record{
			"status":     string(status),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").In(ids)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not update customers status: %w", err)
	}

	return nil
}
