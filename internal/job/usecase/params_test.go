package usecase

import (
	"errors"
	"testing"

	"usernotes-srv/internal/job"
	"usernotes-srv/internal/notes"
)

func actionParam(action string) job.Parameter {
	return job.Parameter{ID: job.ParamAction, Action: action}
}

func textParam(text string) job.Parameter {
	return job.Parameter{ID: job.ParamTextSearch, TextSearch: &job.TextSearchValue{Text: text}}
}

func popupParam(makePopup, disablePopup bool) job.Parameter {
	return job.Parameter{ID: job.ParamPopupSettings, PopupSettings: &job.PopupSettingsValue{MakePopup: makePopup, DisablePopup: disablePopup}}
}

func ids(params []job.Parameter) []string {
	out := make([]string, 0, len(params))
	for _, p := range params {
		out = append(out, p.ID)
	}
	return out
}

func TestNormalizeParams(t *testing.T) {
	t.Run("unknown parameter rejected", func(t *testing.T) {
		_, err := normalizeParams([]job.Parameter{{ID: "colorScheme"}})
		if !errors.Is(err, job.ErrUnknownParameter) {
			t.Errorf("got %v, want ErrUnknownParameter", err)
		}
	})

	t.Run("invalid action rejected", func(t *testing.T) {
		_, err := normalizeParams([]job.Parameter{actionParam("archive")})
		if !errors.Is(err, job.ErrInvalidAction) {
			t.Errorf("got %v, want ErrInvalidAction", err)
		}
	})

	t.Run("category filled from id", func(t *testing.T) {
		params, err := normalizeParams([]job.Parameter{textParam("overdue")})
		if err != nil {
			t.Fatalf("normalizeParams: %v", err)
		}
		if got := params[0].Category; got != job.CategorySearch {
			t.Errorf("category = %q, want %q", got, job.CategorySearch)
		}
	})

	t.Run("later action replaces earlier", func(t *testing.T) {
		params, err := normalizeParams([]job.Parameter{
			actionParam(notes.ActionModify),
			actionParam(notes.ActionDelete),
		})
		if err != nil {
			t.Fatalf("normalizeParams: %v", err)
		}
		if len(params) != 1 {
			t.Fatalf("got %d parameters, want 1", len(params))
		}
		if got := params[0].Action; got != notes.ActionDelete {
			t.Errorf("action = %q, want %q", got, notes.ActionDelete)
		}
	})

	t.Run("duplicate id replaces prior value", func(t *testing.T) {
		params, err := normalizeParams([]job.Parameter{
			textParam("first"),
			textParam("second"),
		})
		if err != nil {
			t.Fatalf("normalizeParams: %v", err)
		}
		if len(params) != 1 {
			t.Fatalf("got %d parameters, want 1", len(params))
		}
		if got := params[0].TextSearch.Text; got != "second" {
			t.Errorf("text = %q, want %q", got, "second")
		}
	})

	t.Run("switching to delete drops modification parameters", func(t *testing.T) {
		params, err := normalizeParams([]job.Parameter{
			actionParam(notes.ActionModify),
			textParam("overdue"),
			popupParam(true, false),
			actionParam(notes.ActionDelete),
		})
		if err != nil {
			t.Fatalf("normalizeParams: %v", err)
		}

		want := []string{job.ParamTextSearch, job.ParamAction}
		got := ids(params)
		if len(got) != len(want) {
			t.Fatalf("got ids %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("ids[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})
}

func TestAvailableOptions(t *testing.T) {
	find := func(opts []job.MenuOption, id string) job.MenuOption {
		for _, o := range opts {
			if o.ID == id {
				return o
			}
		}
		t.Fatalf("option %q missing from menu", id)
		return job.MenuOption{}
	}

	t.Run("without action modification options are closed", func(t *testing.T) {
		opts := availableOptions(nil)
		if !find(opts, job.ParamAction).Available {
			t.Error("action should be available on an empty configuration")
		}
		if !find(opts, job.ParamTextSearch).Available {
			t.Error("textSearch should be available on an empty configuration")
		}
		if find(opts, job.ParamPopupSettings).Available {
			t.Error("popupSettings should be unavailable without a modify action")
		}
	})

	t.Run("modify action opens modification options", func(t *testing.T) {
		opts := availableOptions([]job.Parameter{actionParam(notes.ActionModify)})
		if find(opts, job.ParamAction).Available {
			t.Error("action should be unavailable once selected")
		}
		for _, id := range []string{job.ParamPopupSettings, job.ParamUserViewable, job.ParamNoteType} {
			if !find(opts, id).Available {
				t.Errorf("%s should be available under a modify action", id)
			}
		}
	})

	t.Run("delete action keeps modification options closed", func(t *testing.T) {
		opts := availableOptions([]job.Parameter{actionParam(notes.ActionDelete)})
		for _, id := range []string{job.ParamPopupSettings, job.ParamUserViewable, job.ParamNoteType} {
			if find(opts, id).Available {
				t.Errorf("%s should be unavailable under a delete action", id)
			}
		}
	})

	t.Run("used option is unavailable", func(t *testing.T) {
		opts := availableOptions([]job.Parameter{
			actionParam(notes.ActionModify),
			popupParam(true, false),
		})
		if find(opts, job.ParamPopupSettings).Available {
			t.Error("popupSettings should be unavailable once selected")
		}
		if !find(opts, job.ParamNoteType).Available {
			t.Error("noteType should remain available")
		}
	})
}
