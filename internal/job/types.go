package job

import (
	"usernotes-srv/internal/model"
	"usernotes-srv/internal/notes"
	"usernotes-srv/internal/user"
	"usernotes-srv/pkg/paginator"
)

// Parameter IDs. Each concrete ID may appear at most once in a
// parameter list.
const (
	ParamAction        = "action"
	ParamTextSearch    = "textSearch"
	ParamDateRange     = "dateRange"
	ParamCreatorSearch = "creatorSearch"
	ParamPopupSettings = "popupSettings"
	ParamUserViewable  = "userViewable"
	ParamNoteType      = "noteType"
)

// Parameter categories.
const (
	CategoryAction       = "action"
	CategorySearch       = "search"
	CategoryModification = "modification"
)

// TextSearchValue is the textSearch parameter payload.
type TextSearchValue struct {
	Text          string          `json:"text"`
	CaseSensitive bool            `json:"case_sensitive"`
	MatchMode     notes.MatchMode `json:"match_mode,omitempty"`
	IgnoreAccents *bool           `json:"ignore_accents,omitempty"`
}

// PopupSettingsValue is the popupSettings parameter payload.
type PopupSettingsValue struct {
	MakePopup    bool `json:"make_popup"`
	DisablePopup bool `json:"disable_popup"`
}

// UserViewableValue is the userViewable parameter payload. A nil
// MakeUserViewable is a panel with no selection yet.
type UserViewableValue struct {
	MakeUserViewable *bool `json:"make_user_viewable,omitempty"`
}

// CreatorSearchValue is the creatorSearch parameter payload.
type CreatorSearchValue struct {
	SelectedCreators []string `json:"selected_creators"`
}

// Parameter is one entry of the job configuration. It is a tagged
// variant: ID selects which value field is meaningful.
type Parameter struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Editable bool   `json:"editable"`

	Action        string              `json:"action,omitempty"`
	TextSearch    *TextSearchValue    `json:"text_search,omitempty"`
	DateRange     *notes.DateRange    `json:"date_range,omitempty"`
	CreatorSearch *CreatorSearchValue `json:"creator_search,omitempty"`
	PopupSettings *PopupSettingsValue `json:"popup_settings,omitempty"`
	UserViewable  *UserViewableValue  `json:"user_viewable,omitempty"`
	NoteType      *model.NoteType     `json:"note_type,omitempty"`
}

// MenuOption is one selectable configuration choice with its derived
// availability.
type MenuOption struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

// Intake selects where the user records come from: a platform set or
// an explicit ID list.
type Intake struct {
	SetID   string   `json:"set_id,omitempty"`
	UserIDs []string `json:"user_ids,omitempty"`
}

// PreviewInput asks for the derived state of a configuration.
type PreviewInput struct {
	Parameters []Parameter
	Intake     Intake
}

// PreviewOutput carries the derived menu state and the executability
// verdict with every specific blocking reason.
type PreviewOutput struct {
	Parameters       []Parameter  `json:"parameters"`
	AvailableOptions []MenuOption `json:"available_options"`
	CanExecute       bool         `json:"can_execute"`
	BlockingReasons  []string     `json:"blocking_reasons,omitempty"`
	Summary          user.Summary `json:"summary"`
	SetInfo          *model.SetInfo `json:"set_info,omitempty"`
}

// CreateInput submits a validated configuration for execution.
type CreateInput struct {
	Parameters []Parameter
	Intake     Intake
}

// CreateOutput returns the accepted run.
type CreateOutput struct {
	RunID  string          `json:"run_id"`
	Status model.RunStatus `json:"status"`
}

// GetInput fetches one run.
type GetInput struct {
	RunID string
}

// ListInput lists runs, newest first.
type ListInput struct {
	Paginate paginator.PaginateQuery
}

// ListOutput is a page of runs.
type ListOutput struct {
	Runs      []model.JobRun
	Paginator paginator.Paginator
}

// GetLogsInput lists per-user process logs of a run.
type GetLogsInput struct {
	RunID    string
	Paginate paginator.PaginateQuery
}

// GetLogsOutput is a page of process logs.
type GetLogsOutput struct {
	Logs      []model.UserProcessLog
	Paginator paginator.Paginator
}
