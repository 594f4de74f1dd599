package notes

import (
	"strings"

	"usernotes-srv/internal/model"
)

// MatchMode selects how note text is compared against the query.
type MatchMode string

const (
	MatchSubstring MatchMode = "substring"
	MatchWholeWord MatchMode = "wholeWord"
	MatchExact     MatchMode = "exact"
)

// Actions applied to the matching notes of a user record.
const (
	ActionModify = "modify"
	ActionDelete = "delete"
)

// DateRange bounds notes by creation day. Either side may be empty;
// an empty side places no constraint. Values are date-only (YYYY-MM-DD).
type DateRange struct {
	Start string `json:"start_date,omitempty"`
	End   string `json:"end_date,omitempty"`
}

// IsEmpty reports whether neither bound is set.
func (r DateRange) IsEmpty() bool {
	return strings.TrimSpace(r.Start) == "" && strings.TrimSpace(r.End) == ""
}

// IsComplete reports whether both bounds are set.
func (r DateRange) IsComplete() bool {
	return strings.TrimSpace(r.Start) != "" && strings.TrimSpace(r.End) != ""
}

// SearchCriteria decides which notes of a user record qualify.
type SearchCriteria struct {
	Text          string    `json:"text"`
	CaseSensitive bool      `json:"case_sensitive"`
	MatchMode     MatchMode `json:"match_mode,omitempty"`
	IgnoreAccents bool      `json:"ignore_accents"`
	Locale        string    `json:"locale,omitempty"`
	DateRange     DateRange `json:"date_range,omitempty"`
	Creators      []string  `json:"creators,omitempty"`
	SegmentType   string    `json:"segment_type,omitempty"`
}

// HasText reports whether a usable text query is present. A blank or
// whitespace-only query is treated as absent and never matches.
func (c SearchCriteria) HasText() bool {
	return strings.TrimSpace(c.Text) != ""
}

// HasDate reports whether at least one date bound is active.
func (c SearchCriteria) HasDate() bool {
	return !c.DateRange.IsEmpty()
}

// HasCreators reports whether a creator filter is active.
func (c SearchCriteria) HasCreators() bool {
	return len(c.Creators) > 0
}

// Active reports whether any filter at all is active. Criteria with no
// active filter select nothing, never everything.
func (c SearchCriteria) Active() bool {
	return c.HasText() || c.HasDate() || c.HasCreators()
}

// ModificationOptions describes the change applied to matching notes.
// Each field is independently gated; an unset field leaves the stored
// value untouched.
type ModificationOptions struct {
	Action          string          `json:"action"`
	SetPopup        bool            `json:"set_popup,omitempty"`
	ClearPopup      bool            `json:"clear_popup,omitempty"`
	NoteType        *model.NoteType `json:"note_type,omitempty"`
	SetUserViewable *bool           `json:"set_user_viewable,omitempty"`
}

// HasConcreteChange reports whether at least one modification carries a
// real selection. An empty modify action changes nothing and must not
// be executable.
func (o ModificationOptions) HasConcreteChange() bool {
	return o.SetPopup || o.ClearPopup || o.NoteType != nil || o.SetUserViewable != nil
}
