package platform

import (
	"context"
	"errors"
	"net/http"

	"usernotes-srv/internal/model"
	"usernotes-srv/internal/user/repository"
	"usernotes-srv/pkg/librarysrv"
)

// notFound maps platform 404s onto the repository sentinel.
func notFound(err error) error {
	var statusErr *librarysrv.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return repository.ErrNotFound
	}
	return err
}

func (r *implRepository) GetSet(ctx context.Context, setID string) (*model.SetInfo, error) {
	set, err := r.client.GetSet(ctx, setID)
	if err != nil {
		r.l.Errorf(ctx, "user.repository.platform.GetSet: %v", err)
		return nil, notFound(err)
	}
	return set, nil
}

func (r *implRepository) GetSetMembers(ctx context.Context, setID string, offset int) ([]model.SetMember, error) {
	members, err := r.client.GetSetMembers(ctx, setID, offset)
	if err != nil {
		r.l.Errorf(ctx, "user.repository.platform.GetSetMembers: offset %d: %v", offset, err)
		return nil, notFound(err)
	}
	return members, nil
}

func (r *implRepository) GetUser(ctx context.Context, userID string) (*model.UserRecord, error) {
	rec, err := r.client.GetUser(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}
	return rec, nil
}

func (r *implRepository) UpdateUser(ctx context.Context, userID string, record model.UserRecord) error {
	if err := r.client.UpdateUser(ctx, userID, record); err != nil {
		r.l.Errorf(ctx, "user.repository.platform.UpdateUser: user %s: %v", userID, err)
		return err
	}
	return nil
}

func (r *implRepository) GetNoteTypes(ctx context.Context) ([]model.NoteType, error) {
	types, err := r.client.GetNoteTypes(ctx)
	if err != nil {
		r.l.Errorf(ctx, "user.repository.platform.GetNoteTypes: %v", err)
		return nil, err
	}
	return types, nil
}
