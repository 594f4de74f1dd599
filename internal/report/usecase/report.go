package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jobRepo "usernotes-srv/internal/job/repository"
	"usernotes-srv/internal/model"
	"usernotes-srv/internal/report"
	"usernotes-srv/pkg/minio"
)

// logPageSize is the page size used when draining a run's process logs.
const logPageSize = 500

const downloadExpiry = 30 * time.Minute

// Generate builds the CSV report for a finished run and stores it.
// One file per run; regenerating overwrites the previous object.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input report.GenerateInput) (report.GenerateOutput, error) {
	run, err := uc.repo.GetRun(ctx, input.RunID)
	if err != nil {
		if errors.Is(err, jobRepo.ErrRunNotFound) {
			return report.GenerateOutput{}, report.ErrRunNotFound
		}
		uc.l.Errorf(ctx, "report.usecase.Generate: failed to get run %s: %v", input.RunID, err)
		return report.GenerateOutput{}, report.ErrGenerationFailed
	}

	if run.Status != model.RunStatusCompleted && run.Status != model.RunStatusFailed {
		return report.GenerateOutput{}, report.ErrRunNotFinished
	}

	logs, err := uc.drainLogs(ctx, run.ID)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: failed to list logs of run %s: %v", run.ID, err)
		return report.GenerateOutput{}, report.ErrGenerationFailed
	}
	if len(logs) == 0 {
		return report.GenerateOutput{}, report.ErrNoLogs
	}

	rows := buildRows(run, logs)
	content := renderCSV(rows)
	objectName := fmt.Sprintf("runs/%s/%s", run.ID, reportFileName(run.SetID, time.Now()))

	if err := uc.minio.EnsureBucket(ctx, uc.config.ReportBucket); err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: failed to ensure bucket %s: %v", uc.config.ReportBucket, err)
		return report.GenerateOutput{}, report.ErrGenerationFailed
	}

	_, err = uc.minio.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.config.ReportBucket,
		ObjectName:  objectName,
		Reader:      strings.NewReader(content),
		Size:        int64(len(content)),
		ContentType: "text/csv",
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: failed to upload report for run %s: %v", run.ID, err)
		return report.GenerateOutput{}, report.ErrGenerationFailed
	}

	run.ReportObject = objectName
	run.ReportFormat = "csv"
	if err := uc.repo.UpdateRun(ctx, &run); err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: failed to record report on run %s: %v", run.ID, err)
		return report.GenerateOutput{}, report.ErrGenerationFailed
	}

	return report.GenerateOutput{
		RunID:      run.ID,
		ObjectName: objectName,
		FileFormat: run.ReportFormat,
		Rows:       len(rows),
	}, nil
}

// Download returns a presigned URL for the stored report of a run.
func (uc *implUseCase) Download(ctx context.Context, sc model.Scope, input report.DownloadInput) (report.DownloadOutput, error) {
	run, err := uc.repo.GetRun(ctx, input.RunID)
	if err != nil {
		if errors.Is(err, jobRepo.ErrRunNotFound) {
			return report.DownloadOutput{}, report.ErrRunNotFound
		}
		uc.l.Errorf(ctx, "report.usecase.Download: failed to get run %s: %v", input.RunID, err)
		return report.DownloadOutput{}, report.ErrDownloadURLFailed
	}

	if run.ReportObject == "" {
		return report.DownloadOutput{}, report.ErrReportNotFound
	}

	fileName := run.ReportObject
	if idx := strings.LastIndex(fileName, "/"); idx >= 0 {
		fileName = fileName[idx+1:]
	}

	presigned, err := uc.minio.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.config.ReportBucket,
		ObjectName: run.ReportObject,
		FileName:   fileName,
		Expiry:     downloadExpiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Download: failed to presign report of run %s: %v", run.ID, err)
		return report.DownloadOutput{}, report.ErrDownloadURLFailed
	}

	return report.DownloadOutput{
		DownloadURL: presigned.URL,
		ExpiresAt:   presigned.ExpiresAt.Format(time.RFC3339),
		FileName:    fileName,
	}, nil
}

// drainLogs pages through every process log of a run.
func (uc *implUseCase) drainLogs(ctx context.Context, runID string) ([]model.UserProcessLog, error) {
	var out []model.UserProcessLog
	var offset int64

	for {
		page, _, err := uc.repo.ListLogs(ctx, jobRepo.ListLogsOptions{
			RunID:  runID,
			Limit:  logPageSize,
			Offset: offset,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if len(page) < logPageSize {
			return out, nil
		}
		offset += int64(len(page))
	}
}
