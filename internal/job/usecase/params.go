package usecase

import (
	"usernotes-srv/internal/job"
	"usernotes-srv/internal/notes"
)

// categoryOf maps a parameter ID to its category.
func categoryOf(id string) (string, bool) {
	switch id {
	case job.ParamAction:
		return job.CategoryAction, true
	case job.ParamTextSearch, job.ParamDateRange, job.ParamCreatorSearch:
		return job.CategorySearch, true
	case job.ParamPopupSettings, job.ParamUserViewable, job.ParamNoteType:
		return job.CategoryModification, true
	default:
		return "", false
	}
}

// normalizeParams replays a submitted parameter list through the add
// rules, so the stored configuration is always a reachable state:
// one action at most (a later action replaces an earlier one and, when
// it is delete, drops all modification parameters), at most one
// parameter per concrete ID (a duplicate replaces the prior one), and
// modification parameters only under a modify action.
func normalizeParams(params []job.Parameter) ([]job.Parameter, error) {
	var out []job.Parameter
	for _, p := range params {
		category, ok := categoryOf(p.ID)
		if !ok {
			return nil, job.ErrUnknownParameter
		}
		p.Category = category

		if p.ID == job.ParamAction {
			if p.Action != notes.ActionModify && p.Action != notes.ActionDelete {
				return nil, job.ErrInvalidAction
			}
		}

		out = addParam(out, p)
	}
	return out, nil
}

// addParam applies one parameter to the list under the transition
// rules and returns the new list.
func addParam(params []job.Parameter, p job.Parameter) []job.Parameter {
	out := removeParam(params, p.ID)

	if p.ID == job.ParamAction && p.Action == notes.ActionDelete {
		// Deletion accepts no modification options.
		filtered := out[:0]
		for _, q := range out {
			if q.Category != job.CategoryModification {
				filtered = append(filtered, q)
			}
		}
		out = filtered
	}

	return append(out, p)
}

// removeParam drops the parameter with the given ID, if present.
func removeParam(params []job.Parameter, id string) []job.Parameter {
	out := make([]job.Parameter, 0, len(params))
	for _, p := range params {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

// findParam returns the parameter with the given ID, or nil.
func findParam(params []job.Parameter, id string) *job.Parameter {
	for i := range params {
		if params[i].ID == id {
			return &params[i]
		}
	}
	return nil
}

// currentAction returns the selected action, or "".
func currentAction(params []job.Parameter) string {
	if p := findParam(params, job.ParamAction); p != nil {
		return p.Action
	}
	return ""
}

// menuCatalog is every selectable option with its labels. Availability
// is filled per configuration by availableOptions.
var menuCatalog = []job.MenuOption{
	{ID: job.ParamAction, Category: job.CategoryAction, Label: "Action", Description: "Choose whether matching notes are modified or deleted"},
	{ID: job.ParamTextSearch, Category: job.CategorySearch, Label: "Text Search", Description: "Match notes by their text"},
	{ID: job.ParamDateRange, Category: job.CategorySearch, Label: "Date Range", Description: "Match notes created within a day range"},
	{ID: job.ParamCreatorSearch, Category: job.CategorySearch, Label: "Creator", Description: "Match notes by who created them"},
	{ID: job.ParamPopupSettings, Category: job.CategoryModification, Label: "Popup Settings", Description: "Force the popup flag on or off"},
	{ID: job.ParamUserViewable, Category: job.CategoryModification, Label: "User Viewable", Description: "Change whether the patron can see the note"},
	{ID: job.ParamNoteType, Category: job.CategoryModification, Label: "Note Type", Description: "Replace the note type"},
}

// availableOptions derives the selectable menu from the parameter list
// alone. An option is available when its ID is not already used;
// modification options additionally require the current action to be
// modify. Derived state, never stored, so it cannot drift.
func availableOptions(params []job.Parameter) []job.MenuOption {
	action := currentAction(params)

	out := make([]job.MenuOption, 0, len(menuCatalog))
	for _, opt := range menuCatalog {
		opt.Available = findParam(params, opt.ID) == nil
		if opt.Category == job.CategoryModification && action != notes.ActionModify {
			opt.Available = false
		}
		out = append(out, opt)
	}
	return out
}
