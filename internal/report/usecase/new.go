package usecase

import (
	jobRepo "usernotes-srv/internal/job/repository"
	"usernotes-srv/internal/report"
	"usernotes-srv/pkg/log"
	"usernotes-srv/pkg/minio"
)

const defaultReportBucket = "usernotes-reports"

// Config holds configuration for report generation.
type Config struct {
	ReportBucket string
}

type implUseCase struct {
	repo   jobRepo.PostgresRepository
	minio  minio.MinIO
	l      log.Logger
	config Config
}

// New creates a new report UseCase implementation.
func New(repo jobRepo.PostgresRepository, minioClient minio.MinIO, l log.Logger, cfg Config) report.UseCase {
	if cfg.ReportBucket == "" {
		cfg.ReportBucket = defaultReportBucket
	}

	return &implUseCase{
		repo:   repo,
		minio:  minioClient,
		l:      l,
		config: cfg,
	}
}
