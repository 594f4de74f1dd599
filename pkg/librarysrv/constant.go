package librarysrv

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for the platform API.
	DefaultTimeout = 30 * time.Second
	// DefaultRetries is the default number of GET retries.
	DefaultRetries = 3
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 1 * time.Second
	// MemberPageSize is the fixed set-member page size of the platform API.
	MemberPageSize = 100
)

// API path segments (full URLs built in librarysrv.go).
const (
	PathUsers     = "/users"
	PathSets      = "/conf/sets"
	PathNoteTypes = "/conf/code-tables/UserNoteTypes"
)
