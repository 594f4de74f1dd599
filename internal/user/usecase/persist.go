package usecase

import (
	"context"

	"usernotes-srv/internal/model"
)

// Persist writes the updated record back. Single attempt: the batch
// captures the failure on the user's log entry and continues.
func (uc *implUseCase) Persist(ctx context.Context, userID string, record model.UserRecord) error {
	return uc.platformRepo.UpdateUser(ctx, userID, record)
}

// NoteTypes returns the catalog, from cache when warm, falling back to
// the built-in list if the platform call fails on a cold cache.
func (uc *implUseCase) NoteTypes(ctx context.Context) ([]model.NoteType, error) {
	if cached, err := uc.cacheRepo.GetNoteTypes(ctx); err == nil && len(cached) > 0 {
		return cached, nil
	}

	types, err := uc.platformRepo.GetNoteTypes(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "user.usecase.NoteTypes: platform fetch failed, using defaults: %v", err)
		return model.DefaultNoteTypes, nil
	}
	if len(types) == 0 {
		types = model.DefaultNoteTypes
	}

	if err := uc.cacheRepo.SetNoteTypes(ctx, types, noteTypesTTL); err != nil {
		uc.l.Warnf(ctx, "user.usecase.NoteTypes: cache write: %v", err)
	}

	return types, nil
}
