package notes

import (
	"context"

	"usernotes-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Select returns the subset of the user's notes matching the
	// criteria. Returns an empty slice when the user has no notes or
	// no filter is active.
	Select(ctx context.Context, user *model.UserRecord, criteria SearchCriteria) []model.Note

	// Apply mutates the user's live note collection according to the
	// options, restricted to the matching subset, and returns the
	// audit log for that user. Apply never fails; incoherent per-note
	// requests are skipped.
	Apply(ctx context.Context, user *model.UserRecord, matching []model.Note, options ModificationOptions) model.UserProcessLog
}
