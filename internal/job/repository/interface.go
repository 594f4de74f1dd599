package repository

import (
	"context"

	"usernotes-srv/internal/model"
)

// PostgresRepository persists runs and their per-user process logs.
//
//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateRun(ctx context.Context, run *model.JobRun) error
	UpdateRun(ctx context.Context, run *model.JobRun) error
	GetRun(ctx context.Context, runID string) (model.JobRun, error)
	ListRuns(ctx context.Context, opts ListRunsOptions) ([]model.JobRun, int64, error)

	// InsertLog appends one immutable process log entry.
	InsertLog(ctx context.Context, processLog *model.UserProcessLog) error
	ListLogs(ctx context.Context, opts ListLogsOptions) ([]model.UserProcessLog, int64, error)
}

// CacheRepository publishes live run progress snapshots.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	SetProgress(ctx context.Context, runID string, p Progress) error
	GetProgress(ctx context.Context, runID string) (Progress, error)
	DeleteProgress(ctx context.Context, runID string) error
}
