package usecase

import (
	"context"

	"usernotes-srv/internal/model"
	"usernotes-srv/internal/notes"
)

// Apply mutates the user's live note collection restricted to the
// matching subset and returns the per-user audit log. Matching notes
// are identified by content key, not object identity, because the
// selection pass and the mutation pass may hold distinct copies of the
// same record.
func (uc *implUseCase) Apply(ctx context.Context, user *model.UserRecord, matching []model.Note, options notes.ModificationOptions) model.UserProcessLog {
	userLog := model.UserProcessLog{
		UserID: user.PrimaryID,
		Notes:  []model.NoteLogEntry{},
	}

	if len(matching) == 0 {
		userLog.NoMatchingNotes = true
		return userLog
	}

	keys := make(map[model.NoteKey]struct{}, len(matching))
	for i := range matching {
		keys[matching[i].Key()] = struct{}{}
	}

	switch options.Action {
	case notes.ActionDelete:
		uc.deleteNotes(user, keys, &userLog)
	case notes.ActionModify:
		uc.modifyNotes(ctx, user, keys, options, &userLog)
	}

	return userLog
}

// deleteNotes replaces the user's note array with the complement of the
// matching set and logs one deleted entry per removed note. Notes with
// identical keys are indistinguishable and are removed together.
func (uc *implUseCase) deleteNotes(user *model.UserRecord, keys map[model.NoteKey]struct{}, userLog *model.UserProcessLog) {
	kept := make([]model.Note, 0, len(user.Notes))
	for i := range user.Notes {
		note := &user.Notes[i]
		if _, ok := keys[note.Key()]; !ok {
			kept = append(kept, *note)
			continue
		}
		userLog.Notes = append(userLog.Notes, model.NoteLogEntry{
			Before:  note.Clone(),
			Deleted: true,
		})
	}
	user.Notes = kept
}

// modifyNotes applies each requested field change to every matching
// live note. Changes are individually gated and only recorded when the
// stored value actually differs; an untouched matching note produces no
// log entry.
func (uc *implUseCase) modifyNotes(ctx context.Context, user *model.UserRecord, keys map[model.NoteKey]struct{}, options notes.ModificationOptions, userLog *model.UserProcessLog) {
	for i := range user.Notes {
		note := &user.Notes[i]
		if _, ok := keys[note.Key()]; !ok {
			continue
		}

		before := note.Clone()
		changed := false

		if options.SetPopup && !note.PopupNote {
			note.PopupNote = true
			changed = true
		}
		if options.ClearPopup && note.PopupNote {
			note.PopupNote = false
			changed = true
		}
		if options.NoteType != nil {
			if note.Type == nil {
				// Writing a type onto a note that never had one risks
				// a malformed payload upstream; skip and warn.
				uc.l.Warnf(ctx, "notes.usecase.Apply: note of user %s has no type object, type change skipped", user.PrimaryID)
			} else if note.Type.Value != options.NoteType.Value || note.Type.Desc != options.NoteType.Desc {
				note.Type.Value = options.NoteType.Value
				note.Type.Desc = options.NoteType.Desc
				changed = true
			}
		}
		if options.SetUserViewable != nil {
			current := note.UserViewable != nil && *note.UserViewable
			if current != *options.SetUserViewable {
				v := *options.SetUserViewable
				note.UserViewable = &v
				changed = true
			}
		}

		if changed {
			after := note.Clone()
			userLog.Notes = append(userLog.Notes, model.NoteLogEntry{
				Before:  before,
				After:   &after,
				Deleted: false,
			})
		}
	}
}
