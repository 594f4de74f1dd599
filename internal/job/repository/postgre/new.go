// Package postgre persists job runs and per-user process logs.
//
// Expected tables (schema from the search_path configured on connect):
//
//	note_job_runs  (id uuid pk, set_id, set_name, status, action,
//	                params jsonb, criteria jsonb, options jsonb,
//	                total_users, processed, modified_users, failed_users,
//	                no_match_users, error_message, report_object,
//	                report_format, started_at, completed_at,
//	                created_at, updated_at)
//	note_job_logs  (id bigserial pk, run_id uuid, user_id,
//	                no_matching_notes, notes jsonb, update_successful,
//	                update_error, created_at)
package postgre

import (
	"database/sql"

	"usernotes-srv/internal/job/repository"
	"usernotes-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.PostgresRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
