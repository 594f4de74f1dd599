package report

import "errors"

var (
	ErrRunNotFound       = errors.New("job run not found")
	ErrRunNotFinished    = errors.New("job run has not finished")
	ErrNoLogs            = errors.New("job run has no process logs")
	ErrGenerationFailed  = errors.New("report generation failed")
	ErrReportNotFound    = errors.New("no report generated for this run")
	ErrDownloadURLFailed = errors.New("failed to generate download URL")
)
