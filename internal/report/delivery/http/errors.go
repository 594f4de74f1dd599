package http

import (
	"errors"

	"usernotes-srv/internal/report"
	pkgErrors "usernotes-srv/pkg/errors"
)

var (
	errRunNotFound = pkgErrors.NewHTTPError(
		404, "Job run not found",
	)
	errRunNotFinished = pkgErrors.NewHTTPError(
		409, "Job run has not finished",
	)
	errNoLogs = pkgErrors.NewHTTPError(
		404, "Job run has no process logs",
	)
	errGenerationFailed = pkgErrors.NewHTTPError(
		500, "Report generation failed",
	)
	errReportNotFound = pkgErrors.NewHTTPError(
		404, "No report generated for this run",
	)
	errDownloadURLFailed = pkgErrors.NewHTTPError(
		500, "Failed to generate download URL",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrRunNotFound):
		return errRunNotFound
	case errors.Is(err, report.ErrRunNotFinished):
		return errRunNotFinished
	case errors.Is(err, report.ErrNoLogs):
		return errNoLogs
	case errors.Is(err, report.ErrGenerationFailed):
		return errGenerationFailed
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, report.ErrDownloadURLFailed):
		return errDownloadURLFailed
	default:
		return err
	}
}
