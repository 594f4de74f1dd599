package kafka

// Producer topics.
const (
	// TopicJobEvents carries run lifecycle events for downstream
	// consumers (notifications, analytics).
	TopicJobEvents = "usernotes.job.events"
)

// Event types.
const (
	EventTypeJobStarted   = "job.started"
	EventTypeJobCompleted = "job.completed"
	EventTypeJobFailed    = "job.failed"
)

// JobEventMessage is the wire format of a run lifecycle event.
type JobEventMessage struct {
	EventType     string `json:"event_type"`
	RunID         string `json:"run_id"`
	SetID         string `json:"set_id,omitempty"`
	Action        string `json:"action"`
	TotalUsers    int    `json:"total_users"`
	Processed     int    `json:"processed"`
	ModifiedUsers int    `json:"modified_users"`
	FailedUsers   int    `json:"failed_users"`
	ErrorMessage  string `json:"error_message,omitempty"`
	OccurredAt    int64  `json:"occurred_at"`
}
