package librarysrv

import (
	"context"

	"usernotes-srv/internal/model"
	pkghttp "usernotes-srv/pkg/http"
)

// ILibrary defines the interface for the library platform API client.
// Implementations are safe for concurrent use.
type ILibrary interface {
	GetUser(ctx context.Context, userID string) (*model.UserRecord, error)
	UpdateUser(ctx context.Context, userID string, user model.UserRecord) error
	GetSet(ctx context.Context, setID string) (*model.SetInfo, error)
	GetSetMembers(ctx context.Context, setID string, offset int) ([]model.SetMember, error)
	GetNoteTypes(ctx context.Context) ([]model.NoteType, error)
}

// New creates a new platform API client. Returns the interface.
func New(cfg Config) ILibrary {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &libraryImpl{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: cfg.HTTPClient,
	}
}

func defaultHTTPClient() pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	})
}
