package usecase

import (
	"strings"

	"usernotes-srv/internal/job"
	"usernotes-srv/internal/notes"
)

// hasText reports whether a textSearch parameter carries a non-blank
// query.
func hasText(params []job.Parameter) bool {
	p := findParam(params, job.ParamTextSearch)
	return p != nil && p.TextSearch != nil && strings.TrimSpace(p.TextSearch.Text) != ""
}

// hasFullDateRange reports whether a dateRange parameter carries both
// bounds.
func hasFullDateRange(params []job.Parameter) bool {
	p := findParam(params, job.ParamDateRange)
	return p != nil && p.DateRange != nil && p.DateRange.IsComplete()
}

// hasCreators reports whether a creatorSearch parameter carries at
// least one creator.
func hasCreators(params []job.Parameter) bool {
	p := findParam(params, job.ParamCreatorSearch)
	return p != nil && p.CreatorSearch != nil && len(p.CreatorSearch.SelectedCreators) > 0
}

// hasConcreteModification reports whether any modification parameter
// carries a real selection: a popup flag explicitly on, a note type
// chosen, or the viewable flag explicitly set. An empty panel does not
// count.
func hasConcreteModification(params []job.Parameter) bool {
	if p := findParam(params, job.ParamPopupSettings); p != nil && p.PopupSettings != nil {
		if p.PopupSettings.MakePopup || p.PopupSettings.DisablePopup {
			return true
		}
	}
	if p := findParam(params, job.ParamNoteType); p != nil && p.NoteType != nil {
		return true
	}
	if p := findParam(params, job.ParamUserViewable); p != nil && p.UserViewable != nil {
		if p.UserViewable.MakeUserViewable != nil {
			return true
		}
	}
	return false
}

// validateConfig evaluates every executability rule and returns all
// violations. An empty result means the job may start.
func validateConfig(params []job.Parameter, loadedUsers int) []error {
	var violations []error

	action := currentAction(params)
	if action == "" {
		violations = append(violations, job.ErrMissingAction)
	}

	if loadedUsers == 0 {
		violations = append(violations, job.ErrNoUsersLoaded)
	}

	if p := findParam(params, job.ParamTextSearch); p != nil && !hasText(params) {
		violations = append(violations, job.ErrTextSearchEmpty)
	}

	// A date range is valid fully empty or fully populated; exactly
	// one bound is a blocking state.
	if p := findParam(params, job.ParamDateRange); p != nil && p.DateRange != nil {
		if r := p.DateRange; !r.IsEmpty() && !r.IsComplete() {
			violations = append(violations, job.ErrDateRangeIncomplete)
		}
	}

	if p := findParam(params, job.ParamCreatorSearch); p != nil && !hasCreators(params) {
		violations = append(violations, job.ErrCreatorSelectionEmpty)
	}

	if !hasText(params) && !hasFullDateRange(params) && !hasCreators(params) {
		violations = append(violations, job.ErrNoSearchSelection)
	}

	if action == notes.ActionModify && !hasConcreteModification(params) {
		violations = append(violations, job.ErrNoModificationSelection)
	}

	return violations
}
