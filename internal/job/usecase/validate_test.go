package usecase

import (
	"errors"
	"testing"

	"usernotes-srv/internal/job"
	"usernotes-srv/internal/model"
	"usernotes-srv/internal/notes"
)

func containsErr(violations []error, target error) bool {
	for _, v := range violations {
		if errors.Is(v, target) {
			return true
		}
	}
	return false
}

func TestValidateConfig(t *testing.T) {
	tcs := map[string]struct {
		params      []job.Parameter
		loadedUsers int
		want        []error
		wantAbsent  []error
	}{
		"empty configuration": {
			params:      nil,
			loadedUsers: 0,
			want:        []error{job.ErrMissingAction, job.ErrNoUsersLoaded, job.ErrNoSearchSelection},
		},
		"valid delete by text": {
			params: []job.Parameter{
				actionParam(notes.ActionDelete),
				textParam("overdue"),
			},
			loadedUsers: 3,
			want:        nil,
		},
		"valid modify with popup change": {
			params: []job.Parameter{
				actionParam(notes.ActionModify),
				textParam("overdue"),
				popupParam(true, false),
			},
			loadedUsers: 1,
			want:        nil,
		},
		"blank text search blocks": {
			params: []job.Parameter{
				actionParam(notes.ActionDelete),
				textParam("   "),
			},
			loadedUsers: 1,
			want:        []error{job.ErrTextSearchEmpty, job.ErrNoSearchSelection},
		},
		"single date bound blocks": {
			params: []job.Parameter{
				actionParam(notes.ActionDelete),
				textParam("overdue"),
				{ID: job.ParamDateRange, DateRange: &notes.DateRange{Start: "2024-01-01"}},
			},
			loadedUsers: 1,
			want:        []error{job.ErrDateRangeIncomplete},
		},
		"empty date range is valid": {
			params: []job.Parameter{
				actionParam(notes.ActionDelete),
				textParam("overdue"),
				{ID: job.ParamDateRange, DateRange: &notes.DateRange{}},
			},
			loadedUsers: 1,
			want:        nil,
		},
		"complete date range is a search selection": {
			params: []job.Parameter{
				actionParam(notes.ActionDelete),
				{ID: job.ParamDateRange, DateRange: &notes.DateRange{Start: "2024-01-01", End: "2024-02-01"}},
			},
			loadedUsers: 1,
			want:        nil,
		},
		"creator panel without selection blocks": {
			params: []job.Parameter{
				actionParam(notes.ActionDelete),
				{ID: job.ParamCreatorSearch, CreatorSearch: &job.CreatorSearchValue{}},
			},
			loadedUsers: 1,
			want:        []error{job.ErrCreatorSelectionEmpty, job.ErrNoSearchSelection},
		},
		"modify without concrete modification blocks": {
			params: []job.Parameter{
				actionParam(notes.ActionModify),
				textParam("overdue"),
			},
			loadedUsers: 1,
			want:        []error{job.ErrNoModificationSelection},
		},
		"empty panels are not concrete modifications": {
			params: []job.Parameter{
				actionParam(notes.ActionModify),
				textParam("overdue"),
				popupParam(false, false),
				{ID: job.ParamUserViewable, UserViewable: &job.UserViewableValue{}},
			},
			loadedUsers: 1,
			want:        []error{job.ErrNoModificationSelection},
		},
		"note type counts as a concrete modification": {
			params: []job.Parameter{
				actionParam(notes.ActionModify),
				textParam("overdue"),
				{ID: job.ParamNoteType, NoteType: &model.NoteType{Value: "CIRCULATION", Desc: "Circulation"}},
			},
			loadedUsers: 1,
			wantAbsent:  []error{job.ErrNoModificationSelection},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			params, err := normalizeParams(tc.params)
			if err != nil {
				t.Fatalf("normalizeParams: %v", err)
			}

			violations := validateConfig(params, tc.loadedUsers)

			if tc.want == nil && tc.wantAbsent == nil && len(violations) != 0 {
				t.Fatalf("got violations %v, want none", violations)
			}
			for _, w := range tc.want {
				if !containsErr(violations, w) {
					t.Errorf("violations %v missing %v", violations, w)
				}
			}
			for _, a := range tc.wantAbsent {
				if containsErr(violations, a) {
					t.Errorf("violations %v should not include %v", violations, a)
				}
			}
		})
	}
}
