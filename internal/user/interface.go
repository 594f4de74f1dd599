package user

import (
	"context"

	"usernotes-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// LoadSet resolves a platform set into fully loaded user records.
	// Non-USER sets are rejected. A member whose record cannot be
	// fetched becomes a load-error placeholder, not a batch failure.
	LoadSet(ctx context.Context, sc model.Scope, input LoadSetInput) (LoadOutput, error)

	// LoadUsers loads records for an explicit ID list.
	LoadUsers(ctx context.Context, sc model.Scope, input LoadUsersInput) (LoadOutput, error)

	// Persist writes one updated record back to the platform. One
	// attempt; the caller owns the error.
	Persist(ctx context.Context, userID string, record model.UserRecord) error

	// NoteTypes returns the note type catalog, cached.
	NoteTypes(ctx context.Context) ([]model.NoteType, error)
}
