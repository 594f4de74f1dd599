package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"usernotes-srv/internal/job/repository"
	"usernotes-srv/internal/model"
)

// InsertLog appends one process log entry. The note snapshots go in as
// a JSON document; logs are never updated afterwards.
func (r *implRepository) InsertLog(ctx context.Context, processLog *model.UserProcessLog) error {
	notesJSON, err := json.Marshal(processLog.Notes)
	if err != nil {
		r.l.Errorf(ctx, "job.repository.postgre.InsertLog: failed to marshal notes: %v", err)
		return err
	}

	var updateSuccessful sql.NullBool
	if processLog.UpdateSuccessful != nil {
		updateSuccessful = sql.NullBool{Bool: *processLog.UpdateSuccessful, Valid: true}
	}

	processLog.CreatedAt = time.Now()
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO note_job_logs (run_id, user_id, no_matching_notes, notes,
			update_successful, update_error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		processLog.RunID, processLog.UserID, processLog.NoMatchingNotes, notesJSON,
		updateSuccessful, nullString(processLog.UpdateError), processLog.CreatedAt,
	).Scan(&processLog.ID)
	if err != nil {
		r.l.Errorf(ctx, "job.repository.postgre.InsertLog: failed to insert log for user %s: %v", processLog.UserID, err)
		return err
	}
	return nil
}

// ListLogs returns one page of a run's process logs in insertion order
// and the total count.
func (r *implRepository) ListLogs(ctx context.Context, opts repository.ListLogsOptions) ([]model.UserProcessLog, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM note_job_logs WHERE run_id = $1`,
		opts.RunID,
	).Scan(&total); err != nil {
		r.l.Errorf(ctx, "job.repository.postgre.ListLogs: failed to count logs: %v", err)
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, run_id, user_id, no_matching_notes, notes,
			update_successful, update_error, created_at
		FROM note_job_logs
		WHERE run_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3`,
		opts.RunID, opts.Limit, opts.Offset,
	)
	if err != nil {
		r.l.Errorf(ctx, "job.repository.postgre.ListLogs: failed to query logs: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	var logs []model.UserProcessLog
	for rows.Next() {
		var (
			entry            model.UserProcessLog
			notesJSON        []byte
			updateSuccessful sql.NullBool
			updateError      sql.NullString
		)
		if err := rows.Scan(
			&entry.ID, &entry.RunID, &entry.UserID, &entry.NoMatchingNotes,
			&notesJSON, &updateSuccessful, &updateError, &entry.CreatedAt,
		); err != nil {
			r.l.Errorf(ctx, "job.repository.postgre.ListLogs: failed to scan log: %v", err)
			return nil, 0, err
		}

		if err := json.Unmarshal(notesJSON, &entry.Notes); err != nil {
			r.l.Errorf(ctx, "job.repository.postgre.ListLogs: failed to unmarshal notes: %v", err)
			return nil, 0, err
		}
		if updateSuccessful.Valid {
			entry.UpdateSuccessful = &updateSuccessful.Bool
		}
		entry.UpdateError = updateError.String

		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
