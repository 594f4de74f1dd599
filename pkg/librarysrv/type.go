package librarysrv

import (
	"encoding/json"
	"fmt"

	pkghttp "usernotes-srv/pkg/http"
)

// Config holds configuration for the platform API client.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient pkghttp.IClient
}

// libraryImpl implements ILibrary.
type libraryImpl struct {
	baseURL    string
	apiKey     string
	httpClient pkghttp.IClient
}

// memberPage is one page of a set member listing.
type memberPage struct {
	TotalRecordCount int          `json:"total_record_count"`
	Member           []rawMember  `json:"member"`
}

// rawMember tolerates numeric or string member ids.
type rawMember struct {
	ID          json.Number `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Link        string      `json:"link"`
}

// codeTable is a platform code table response.
type codeTable struct {
	Row []struct {
		Code        string `json:"code"`
		Description string `json:"description"`
		Enabled     bool   `json:"enabled"`
	} `json:"row"`
}

// apiError is the platform error envelope.
type apiError struct {
	ErrorsExist bool `json:"errorsExist"`
	ErrorList   struct {
		Error []struct {
			ErrorCode    string `json:"errorCode"`
			ErrorMessage string `json:"errorMessage"`
		} `json:"error"`
	} `json:"errorList"`
}

// StatusError is returned when the platform answers with a non-2xx
// status. The platform error message is included when present.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("platform returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("platform returned status %d: %s", e.StatusCode, e.Message)
}
