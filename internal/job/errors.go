package job

import "errors"

// Configuration errors. Each blocking rule has its own sentinel so the
// caller always gets the specific reason, never a generic failure.
var (
	ErrMissingAction           = errors.New("no action selected")
	ErrNoUsersLoaded           = errors.New("no user records loaded")
	ErrTextSearchEmpty         = errors.New("text search is selected but empty")
	ErrDateRangeIncomplete     = errors.New("date range needs both start and end dates")
	ErrNoSearchSelection       = errors.New("no search criteria selected")
	ErrCreatorSelectionEmpty   = errors.New("creator search is selected but no creator is chosen")
	ErrNoModificationSelection = errors.New("modify action needs at least one concrete modification")
)

// Parameter errors.
var (
	ErrUnknownParameter = errors.New("unknown parameter id")
	ErrInvalidAction    = errors.New("action must be modify or delete")
	ErrUnknownNoteType  = errors.New("requested note type is not in the catalog")
)

// Run errors.
var (
	ErrRunNotFound   = errors.New("job run not found")
	ErrRunNotStarted = errors.New("job run has not started")
)
