package job

import (
	"context"

	"usernotes-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Preview derives the menu state and executability verdict of a
	// configuration without starting anything.
	Preview(ctx context.Context, sc model.Scope, input PreviewInput) (PreviewOutput, error)

	// Create validates the configuration, records the run and starts
	// the batch in the background. Validation failures carry the
	// specific blocking rule.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	Get(ctx context.Context, sc model.Scope, input GetInput) (model.JobRun, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	GetLogs(ctx context.Context, sc model.Scope, input GetLogsInput) (GetLogsOutput, error)
}

// EventPublisher announces run lifecycle transitions to downstream
// consumers. Publishing failures never affect the run itself.
type EventPublisher interface {
	PublishJobEvent(ctx context.Context, eventType string, run model.JobRun)
}
