package usecase

import (
	"testing"

	"usernotes-srv/internal/job"
	"usernotes-srv/internal/model"
	"usernotes-srv/internal/notes"
)

func TestBuildCriteria(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		criteria := buildCriteria(nil, "en")

		if criteria.MatchMode != notes.MatchSubstring {
			t.Errorf("match mode = %q, want %q", criteria.MatchMode, notes.MatchSubstring)
		}
		if !criteria.IgnoreAccents {
			t.Error("ignore accents should default to true")
		}
		if criteria.Locale != "en" {
			t.Errorf("locale = %q, want %q", criteria.Locale, "en")
		}
	})

	t.Run("text search carries its settings", func(t *testing.T) {
		noAccents := false
		params := []job.Parameter{{
			ID: job.ParamTextSearch,
			TextSearch: &job.TextSearchValue{
				Text:          "Overdue",
				CaseSensitive: true,
				MatchMode:     notes.MatchWholeWord,
				IgnoreAccents: &noAccents,
			},
		}}

		criteria := buildCriteria(params, "fr")

		if criteria.Text != "Overdue" {
			t.Errorf("text = %q, want %q", criteria.Text, "Overdue")
		}
		if !criteria.CaseSensitive {
			t.Error("case sensitive should be carried")
		}
		if criteria.MatchMode != notes.MatchWholeWord {
			t.Errorf("match mode = %q, want %q", criteria.MatchMode, notes.MatchWholeWord)
		}
		if criteria.IgnoreAccents {
			t.Error("ignore accents override should be carried")
		}
	})

	t.Run("incomplete date range is dropped", func(t *testing.T) {
		params := []job.Parameter{{
			ID:        job.ParamDateRange,
			DateRange: &notes.DateRange{Start: "2024-01-01"},
		}}

		criteria := buildCriteria(params, "en")
		if !criteria.DateRange.IsEmpty() {
			t.Errorf("date range = %+v, want empty", criteria.DateRange)
		}
	})

	t.Run("complete date range and creators carried", func(t *testing.T) {
		params := []job.Parameter{
			{ID: job.ParamDateRange, DateRange: &notes.DateRange{Start: "2024-01-01", End: "2024-02-01"}},
			{ID: job.ParamCreatorSearch, CreatorSearch: &job.CreatorSearchValue{SelectedCreators: []string{"exl_impl"}}},
		}

		criteria := buildCriteria(params, "en")
		if !criteria.DateRange.IsComplete() {
			t.Errorf("date range = %+v, want complete", criteria.DateRange)
		}
		if len(criteria.Creators) != 1 || criteria.Creators[0] != "exl_impl" {
			t.Errorf("creators = %v, want [exl_impl]", criteria.Creators)
		}
	})
}

func TestBuildOptions(t *testing.T) {
	viewable := true
	params := []job.Parameter{
		actionParam(notes.ActionModify),
		popupParam(false, true),
		{ID: job.ParamNoteType, NoteType: &model.NoteType{Value: "CIRCULATION", Desc: "Circulation"}},
		{ID: job.ParamUserViewable, UserViewable: &job.UserViewableValue{MakeUserViewable: &viewable}},
	}

	opts := buildOptions(params)

	if opts.Action != notes.ActionModify {
		t.Errorf("action = %q, want %q", opts.Action, notes.ActionModify)
	}
	if opts.SetPopup || !opts.ClearPopup {
		t.Errorf("popup flags = set=%v clear=%v, want set=false clear=true", opts.SetPopup, opts.ClearPopup)
	}
	if opts.NoteType == nil || opts.NoteType.Value != "CIRCULATION" {
		t.Errorf("note type = %+v, want CIRCULATION", opts.NoteType)
	}
	if opts.SetUserViewable == nil || !*opts.SetUserViewable {
		t.Errorf("user viewable = %v, want true", opts.SetUserViewable)
	}

	// The built options must not alias the parameter payloads.
	params[2].NoteType.Value = "OTHER"
	if opts.NoteType.Value != "CIRCULATION" {
		t.Error("note type should be copied, not aliased")
	}
}
