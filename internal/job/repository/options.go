package repository

import "usernotes-srv/internal/model"

// ListRunsOptions filters and pages the run listing. Newest first.
type ListRunsOptions struct {
	Status string
	SetID  string
	Limit  int64
	Offset int64
}

// ListLogsOptions pages the process logs of one run.
type ListLogsOptions struct {
	RunID  string
	Limit  int64
	Offset int64
}

// Progress is the live counter snapshot of a running batch.
type Progress struct {
	Status    model.RunStatus `json:"status"`
	Total     int             `json:"total"`
	Processed int             `json:"processed"`
	Modified  int             `json:"modified"`
	Failed    int             `json:"failed"`
	NoMatch   int             `json:"no_match"`
}
