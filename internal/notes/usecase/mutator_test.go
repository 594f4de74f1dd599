package usecase

import (
	"context"
	"testing"
	"time"

	"usernotes-srv/internal/model"
	"usernotes-srv/internal/notes"
)

func boolPtr(v bool) *bool { return &v }

func TestApplyDelete(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(time.UTC)

	t.Run("empty match set reports no matching notes", func(t *testing.T) {
		user := testUser("keep me")
		got := uc.Apply(ctx, user, nil, notes.ModificationOptions{Action: notes.ActionDelete})
		if !got.NoMatchingNotes {
			t.Error("expected NoMatchingNotes true")
		}
		if len(user.Notes) != 1 {
			t.Error("no mutation may be attempted on an empty match set")
		}
	})

	t.Run("deletes exactly the matching notes", func(t *testing.T) {
		user := testUser("delete one", "keep", "delete two")
		matching := []model.Note{user.Notes[0].Clone(), user.Notes[2].Clone()}

		got := uc.Apply(ctx, user, matching, notes.ModificationOptions{Action: notes.ActionDelete})

		if len(user.Notes) != 1 {
			t.Fatalf("note count: got %d, want 1", len(user.Notes))
		}
		if user.Notes[0].Text != "keep" {
			t.Errorf("wrong note kept: %q", user.Notes[0].Text)
		}
		if len(got.Notes) != 2 {
			t.Fatalf("log entries: got %d, want 2", len(got.Notes))
		}
		for _, entry := range got.Notes {
			if !entry.Deleted {
				t.Error("delete entries must carry deleted true")
			}
			if entry.After != nil {
				t.Error("delete entries must not carry an after snapshot")
			}
		}
	})

	t.Run("identity is content based not reference based", func(t *testing.T) {
		user := testUser("clone me")
		// A structurally equal but distinct copy, as produced when the
		// mutation pass works on a re-fetched record.
		clone := model.Note{
			Text:        "clone me",
			CreatedBy:   "staff1",
			CreatedDate: "2024-01-05",
		}

		got := uc.Apply(ctx, user, []model.Note{clone}, notes.ModificationOptions{Action: notes.ActionDelete})
		if len(user.Notes) != 0 {
			t.Error("equal-key copy must identify the live note")
		}
		if len(got.Notes) != 1 {
			t.Errorf("log entries: got %d, want 1", len(got.Notes))
		}
	})

	t.Run("duplicate keys are handled together", func(t *testing.T) {
		user := testUser("same", "same")
		matching := []model.Note{user.Notes[0].Clone()}

		got := uc.Apply(ctx, user, matching, notes.ModificationOptions{Action: notes.ActionDelete})
		if len(user.Notes) != 0 {
			t.Error("bit-identical notes are indistinguishable and go together")
		}
		if len(got.Notes) != 2 {
			t.Errorf("log entries: got %d, want 2", len(got.Notes))
		}
	})
}

func TestApplyModify(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(time.UTC)

	t.Run("set popup only when not already set", func(t *testing.T) {
		user := testUser("target")
		user.Notes[0].Type = &model.NoteType{Value: "OTHER", Desc: "Other"}
		matching := []model.Note{user.Notes[0].Clone()}

		opts := notes.ModificationOptions{Action: notes.ActionModify, SetPopup: true}
		got := uc.Apply(ctx, user, matching, opts)

		if !user.Notes[0].PopupNote {
			t.Error("popup flag should be set")
		}
		if len(got.Notes) != 1 {
			t.Fatalf("log entries: got %d, want 1", len(got.Notes))
		}
		if got.Notes[0].Before.PopupNote {
			t.Error("before snapshot must show the original value")
		}
		if got.Notes[0].After == nil || !got.Notes[0].After.PopupNote {
			t.Error("after snapshot must show the new value")
		}

		// Second application is a no-op and must not be logged.
		matching = []model.Note{user.Notes[0].Clone()}
		got = uc.Apply(ctx, user, matching, opts)
		if len(got.Notes) != 0 {
			t.Errorf("no-op write logged: got %d entries, want 0", len(got.Notes))
		}
	})

	t.Run("missing type object skips the type change", func(t *testing.T) {
		user := testUser("untyped")
		matching := []model.Note{user.Notes[0].Clone()}

		opts := notes.ModificationOptions{
			Action:   notes.ActionModify,
			NoteType: &model.NoteType{Value: "LIBRARY", Desc: "Library"},
		}
		got := uc.Apply(ctx, user, matching, opts)

		if user.Notes[0].Type != nil {
			t.Error("type must not be created on a note that had none")
		}
		if len(got.Notes) != 0 {
			t.Errorf("skipped change logged: got %d entries, want 0", len(got.Notes))
		}
	})

	t.Run("type change replaces value and desc in place", func(t *testing.T) {
		user := testUser("typed")
		user.Notes[0].Type = &model.NoteType{Value: "OTHER", Desc: "Other"}
		matching := []model.Note{user.Notes[0].Clone()}

		opts := notes.ModificationOptions{
			Action:   notes.ActionModify,
			NoteType: &model.NoteType{Value: "CIRCULATION", Desc: "Circulation"},
		}
		got := uc.Apply(ctx, user, matching, opts)

		if user.Notes[0].Type.Value != "CIRCULATION" {
			t.Errorf("type value: got %q, want CIRCULATION", user.Notes[0].Type.Value)
		}
		if len(got.Notes) != 1 {
			t.Fatalf("log entries: got %d, want 1", len(got.Notes))
		}
		if got.Notes[0].Before.Type.Value != "OTHER" {
			t.Error("before snapshot must keep the original type")
		}
	})

	t.Run("before snapshot survives later mutation", func(t *testing.T) {
		user := testUser("audit")
		matching := []model.Note{user.Notes[0].Clone()}

		opts := notes.ModificationOptions{Action: notes.ActionModify, SetPopup: true}
		got := uc.Apply(ctx, user, matching, opts)

		user.Notes[0].Text = "overwritten later"
		if got.Notes[0].Before.Text != "audit" {
			t.Error("before snapshot was not an independent copy")
		}
	})

	t.Run("set user viewable round trip", func(t *testing.T) {
		user := testUser("viewable test")
		criteria := notes.SearchCriteria{Text: "viewable"}

		matching := uc.Select(ctx, user, criteria)
		if len(matching) != 1 {
			t.Fatalf("select: got %d matches, want 1", len(matching))
		}

		opts := notes.ModificationOptions{Action: notes.ActionModify, SetUserViewable: boolPtr(true)}
		got := uc.Apply(ctx, user, matching, opts)
		if len(got.Notes) != 1 {
			t.Fatalf("log entries: got %d, want 1", len(got.Notes))
		}

		// Re-query with the same criteria finds the same note, now
		// viewable, with nothing else altered.
		again := uc.Select(ctx, user, criteria)
		if len(again) != 1 {
			t.Fatalf("re-query: got %d matches, want 1", len(again))
		}
		if again[0].UserViewable == nil || !*again[0].UserViewable {
			t.Error("user viewable should now be true")
		}
		if again[0].Text != "viewable test" || again[0].PopupNote {
			t.Error("no other field may change")
		}

		// Applying the same flag again is a no-op.
		got = uc.Apply(ctx, user, again, opts)
		if len(got.Notes) != 0 {
			t.Errorf("no-op write logged: got %d entries, want 0", len(got.Notes))
		}
	})
}
