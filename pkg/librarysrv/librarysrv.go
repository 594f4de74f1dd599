package librarysrv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"usernotes-srv/internal/model"
)

func (c *libraryImpl) headers() map[string]string {
	return map[string]string{
		"Authorization": "apikey " + c.apiKey,
		"Accept":        "application/json",
	}
}

func (c *libraryImpl) statusError(body []byte, statusCode int) error {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && len(apiErr.ErrorList.Error) > 0 {
		return &StatusError{StatusCode: statusCode, Message: apiErr.ErrorList.Error[0].ErrorMessage}
	}
	return &StatusError{StatusCode: statusCode}
}

// GetUser retrieves the full user record by primary ID.
func (c *libraryImpl) GetUser(ctx context.Context, userID string) (*model.UserRecord, error) {
	url := fmt.Sprintf("%s%s/%s", c.baseURL, PathUsers, userID)

	body, statusCode, err := c.httpClient.Get(ctx, url, c.headers())
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, c.statusError(body, statusCode)
	}

	var user model.UserRecord
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

// UpdateUser writes the whole user record back. One attempt only; the
// caller records the failure on the process log and moves on.
func (c *libraryImpl) UpdateUser(ctx context.Context, userID string, user model.UserRecord) error {
	url := fmt.Sprintf("%s%s/%s", c.baseURL, PathUsers, userID)

	body, statusCode, err := c.httpClient.Put(ctx, url, user, c.headers())
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if statusCode != http.StatusOK {
		return c.statusError(body, statusCode)
	}

	return nil
}

// GetSet retrieves set information by ID.
func (c *libraryImpl) GetSet(ctx context.Context, setID string) (*model.SetInfo, error) {
	url := fmt.Sprintf("%s%s/%s", c.baseURL, PathSets, setID)

	body, statusCode, err := c.httpClient.Get(ctx, url, c.headers())
	if err != nil {
		return nil, fmt.Errorf("failed to get set: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, c.statusError(body, statusCode)
	}

	var set model.SetInfo
	if err := json.Unmarshal(body, &set); err != nil {
		return nil, fmt.Errorf("failed to unmarshal set: %w", err)
	}

	return &set, nil
}

// GetSetMembers retrieves one page of set members at the given offset.
// The page size is fixed at MemberPageSize; a short page means the
// listing is exhausted.
func (c *libraryImpl) GetSetMembers(ctx context.Context, setID string, offset int) ([]model.SetMember, error) {
	url := fmt.Sprintf("%s%s/%s/members?limit=%d&offset=%d", c.baseURL, PathSets, setID, MemberPageSize, offset)

	body, statusCode, err := c.httpClient.Get(ctx, url, c.headers())
	if err != nil {
		return nil, fmt.Errorf("failed to get set members: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, c.statusError(body, statusCode)
	}

	var page memberPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal set members: %w", err)
	}

	members := make([]model.SetMember, 0, len(page.Member))
	for _, m := range page.Member {
		members = append(members, model.SetMember{
			ID:          m.ID.String(),
			Name:        m.Name,
			Description: m.Description,
			Link:        m.Link,
		})
	}

	return members, nil
}

// GetNoteTypes retrieves the user note type code table.
func (c *libraryImpl) GetNoteTypes(ctx context.Context) ([]model.NoteType, error) {
	url := c.baseURL + PathNoteTypes

	body, statusCode, err := c.httpClient.Get(ctx, url, c.headers())
	if err != nil {
		return nil, fmt.Errorf("failed to get note types: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, c.statusError(body, statusCode)
	}

	var table codeTable
	if err := json.Unmarshal(body, &table); err != nil {
		return nil, fmt.Errorf("failed to unmarshal note types: %w", err)
	}

	types := make([]model.NoteType, 0, len(table.Row))
	for _, row := range table.Row {
		if !row.Enabled {
			continue
		}
		types = append(types, model.NoteType{Value: row.Code, Desc: row.Description})
	}

	return types, nil
}
