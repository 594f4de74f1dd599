package model

import "time"

// RunStatus is the lifecycle state of a batch run.
type RunStatus string

const (
	RunStatusIdle      RunStatus = "idle"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// JobRun is one batch execution over a loaded user list.
type JobRun struct {
	ID      string
	SetID   string
	SetName string
	Status  RunStatus
	Action  string

	// Effective configuration, echoed verbatim on read.
	Params   []byte // parameter list as submitted (JSON)
	Criteria []byte // resolved search criteria (JSON)
	Options  []byte // resolved modification options (JSON)

	TotalUsers    int
	Processed     int
	ModifiedUsers int
	FailedUsers   int
	NoMatchUsers  int

	ErrorMessage string

	ReportObject string
	ReportFormat string

	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NoteLogEntry is one audited note change. Before and After are deep
// snapshots taken at the moment of capture.
type NoteLogEntry struct {
	Before  Note  `json:"before"`
	After   *Note `json:"after,omitempty"`
	Deleted bool  `json:"deleted"`
}

// UserProcessLog is the per-user outcome of a run. Immutable once the
// run completes.
type UserProcessLog struct {
	ID               int64          `json:"id,omitempty"`
	RunID            string         `json:"run_id,omitempty"`
	UserID           string         `json:"user_id"`
	NoMatchingNotes  bool           `json:"no_matching_notes"`
	Notes            []NoteLogEntry `json:"notes"`
	UpdateSuccessful *bool          `json:"update_successful,omitempty"`
	UpdateError      string         `json:"update_error,omitempty"`
	CreatedAt        time.Time      `json:"created_at,omitempty"`
}

// Changed reports whether the log carries any note change entries.
func (l *UserProcessLog) Changed() bool {
	return len(l.Notes) > 0
}
