package usecase

import (
	"usernotes-srv/internal/job"
	"usernotes-srv/internal/notes"
)

// buildCriteria resolves the search parameters into engine criteria.
// The locale comes from the request context so matching folds the way
// the operator's language expects.
func buildCriteria(params []job.Parameter, locale string) notes.SearchCriteria {
	criteria := notes.SearchCriteria{
		MatchMode:     notes.MatchSubstring,
		IgnoreAccents: true,
		Locale:        locale,
	}

	if p := findParam(params, job.ParamTextSearch); p != nil && p.TextSearch != nil {
		criteria.Text = p.TextSearch.Text
		criteria.CaseSensitive = p.TextSearch.CaseSensitive
		if p.TextSearch.MatchMode != "" {
			criteria.MatchMode = p.TextSearch.MatchMode
		}
		if p.TextSearch.IgnoreAccents != nil {
			criteria.IgnoreAccents = *p.TextSearch.IgnoreAccents
		}
	}

	if p := findParam(params, job.ParamDateRange); p != nil && p.DateRange != nil && p.DateRange.IsComplete() {
		criteria.DateRange = *p.DateRange
	}

	if p := findParam(params, job.ParamCreatorSearch); p != nil && p.CreatorSearch != nil {
		criteria.Creators = p.CreatorSearch.SelectedCreators
	}

	return criteria
}

// buildOptions resolves the action and modification parameters into
// engine options.
func buildOptions(params []job.Parameter) notes.ModificationOptions {
	opts := notes.ModificationOptions{Action: currentAction(params)}

	if p := findParam(params, job.ParamPopupSettings); p != nil && p.PopupSettings != nil {
		opts.SetPopup = p.PopupSettings.MakePopup
		opts.ClearPopup = p.PopupSettings.DisablePopup
	}
	if p := findParam(params, job.ParamNoteType); p != nil && p.NoteType != nil {
		t := *p.NoteType
		opts.NoteType = &t
	}
	if p := findParam(params, job.ParamUserViewable); p != nil && p.UserViewable != nil && p.UserViewable.MakeUserViewable != nil {
		v := *p.UserViewable.MakeUserViewable
		opts.SetUserViewable = &v
	}

	return opts
}
