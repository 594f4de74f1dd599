package postgre

import (
	"context"
	"database/sql"
	"time"

	"usernotes-srv/internal/job/repository"
	"usernotes-srv/internal/model"
)

const runColumns = `id, set_id, set_name, status, action, params, criteria, options,
	total_users, processed, modified_users, failed_users, no_match_users,
	error_message, report_object, report_format, started_at, completed_at,
	created_at, updated_at`

// CreateRun inserts a new run record.
func (r *implRepository) CreateRun(ctx context.Context, run *model.JobRun) error {
	now := time.Now()
	run.CreatedAt = now
	run.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO note_job_runs (id, set_id, set_name, status, action,
			params, criteria, options, total_users, started_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		run.ID, run.SetID, run.SetName, run.Status, run.Action,
		run.Params, run.Criteria, run.Options, run.TotalUsers,
		run.StartedAt, run.CreatedAt, run.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "job.repository.postgre.CreateRun: failed to insert run: %v", err)
		return err
	}
	return nil
}

// UpdateRun writes the counters, status and report fields back.
func (r *implRepository) UpdateRun(ctx context.Context, run *model.JobRun) error {
	run.UpdatedAt = time.Now()

	res, err := r.db.ExecContext(ctx, `
		UPDATE note_job_runs
		SET status = $2, processed = $3, modified_users = $4, failed_users = $5,
			no_match_users = $6, error_message = $7, report_object = $8,
			report_format = $9, completed_at = $10, updated_at = $11
		WHERE id = $1`,
		run.ID, run.Status, run.Processed, run.ModifiedUsers, run.FailedUsers,
		run.NoMatchUsers, nullString(run.ErrorMessage), nullString(run.ReportObject),
		nullString(run.ReportFormat), run.CompletedAt, run.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "job.repository.postgre.UpdateRun: failed to update run %s: %v", run.ID, err)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrRunNotFound
	}
	return nil
}

// GetRun fetches one run by ID.
func (r *implRepository) GetRun(ctx context.Context, runID string) (model.JobRun, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+runColumns+`
		FROM note_job_runs
		WHERE id = $1`, runID)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return model.JobRun{}, repository.ErrRunNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "job.repository.postgre.GetRun: failed to get run %s: %v", runID, err)
		return model.JobRun{}, err
	}
	return run, nil
}

// ListRuns returns one page of runs, newest first, and the total count.
func (r *implRepository) ListRuns(ctx context.Context, opts repository.ListRunsOptions) ([]model.JobRun, int64, error) {
	where := `WHERE ($1 = '' OR status = $1) AND ($2 = '' OR set_id = $2)`

	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM note_job_runs `+where,
		opts.Status, opts.SetID,
	).Scan(&total); err != nil {
		r.l.Errorf(ctx, "job.repository.postgre.ListRuns: failed to count runs: %v", err)
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+runColumns+`
		FROM note_job_runs `+where+`
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		opts.Status, opts.SetID, opts.Limit, opts.Offset,
	)
	if err != nil {
		r.l.Errorf(ctx, "job.repository.postgre.ListRuns: failed to query runs: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	var runs []model.JobRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			r.l.Errorf(ctx, "job.repository.postgre.ListRuns: failed to scan run: %v", err)
			return nil, 0, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return runs, total, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (model.JobRun, error) {
	var (
		run          model.JobRun
		errMsg       sql.NullString
		reportObject sql.NullString
		reportFormat sql.NullString
		startedAt    sql.NullTime
		completedAt  sql.NullTime
	)

	err := row.Scan(
		&run.ID, &run.SetID, &run.SetName, &run.Status, &run.Action,
		&run.Params, &run.Criteria, &run.Options,
		&run.TotalUsers, &run.Processed, &run.ModifiedUsers, &run.FailedUsers,
		&run.NoMatchUsers, &errMsg, &reportObject, &reportFormat,
		&startedAt, &completedAt, &run.CreatedAt, &run.UpdatedAt,
	)
	if err != nil {
		return model.JobRun{}, err
	}

	run.ErrorMessage = errMsg.String
	run.ReportObject = reportObject.String
	run.ReportFormat = reportFormat.String
	if startedAt.Valid {
		run.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		run.CompletedAt = &completedAt.Time
	}
	return run, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
