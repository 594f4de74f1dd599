package usecase

import (
	"context"
	"testing"
	"time"

	"usernotes-srv/internal/model"
	"usernotes-srv/internal/notes"
)

func testUser(texts ...string) *model.UserRecord {
	u := &model.UserRecord{PrimaryID: "u1"}
	for _, text := range texts {
		u.Notes = append(u.Notes, model.Note{
			Text:        text,
			CreatedBy:   "staff1",
			CreatedDate: "2024-01-05",
		})
	}
	return u
}

func TestSelect(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(time.UTC)

	t.Run("no active filter selects nothing", func(t *testing.T) {
		user := testUser("first note", "second note")
		got := uc.Select(ctx, user, notes.SearchCriteria{Text: "   "})
		if len(got) != 0 {
			t.Errorf("expected no matches, got %d", len(got))
		}
	})

	t.Run("no notes selects nothing", func(t *testing.T) {
		user := &model.UserRecord{PrimaryID: "u1"}
		got := uc.Select(ctx, user, notes.SearchCriteria{Text: "note"})
		if len(got) != 0 {
			t.Errorf("expected no matches, got %d", len(got))
		}
	})

	t.Run("text filter", func(t *testing.T) {
		user := testUser("overdue items", "lost card", "overdue fees waived")
		got := uc.Select(ctx, user, notes.SearchCriteria{Text: "overdue"})
		if len(got) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(got))
		}
	})

	t.Run("text and date filters are conjunctive", func(t *testing.T) {
		user := testUser("overdue items")
		user.Notes = append(user.Notes, model.Note{
			Text:        "overdue again",
			CreatedBy:   "staff1",
			CreatedDate: "2024-06-01",
		})

		criteria := notes.SearchCriteria{
			Text:      "overdue",
			DateRange: notes.DateRange{Start: "2024-01-01", End: "2024-01-31"},
		}
		got := uc.Select(ctx, user, criteria)
		if len(got) != 1 {
			t.Fatalf("expected 1 match, got %d", len(got))
		}
		if got[0].Text != "overdue items" {
			t.Errorf("wrong note selected: %q", got[0].Text)
		}
	})

	t.Run("creator filter alone is an active filter", func(t *testing.T) {
		user := testUser("first", "second")
		user.Notes[1].CreatedBy = "staff2"

		got := uc.Select(ctx, user, notes.SearchCriteria{Creators: []string{"staff2"}})
		if len(got) != 1 {
			t.Fatalf("expected 1 match, got %d", len(got))
		}
		if got[0].CreatedBy != "staff2" {
			t.Errorf("wrong creator selected: %q", got[0].CreatedBy)
		}
	})

	t.Run("segment filter", func(t *testing.T) {
		user := testUser("internal note", "external note")
		user.Notes[0].SegmentType = model.SegmentInternal
		user.Notes[1].SegmentType = model.SegmentExternal

		got := uc.Select(ctx, user, notes.SearchCriteria{
			Text:        "note",
			SegmentType: model.SegmentExternal,
		})
		if len(got) != 1 || got[0].SegmentType != model.SegmentExternal {
			t.Fatalf("expected only the external note, got %d", len(got))
		}
	})
}
