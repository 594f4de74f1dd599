package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"usernotes-srv/internal/model"
	"usernotes-srv/internal/user"
	"usernotes-srv/internal/user/repository"
	"usernotes-srv/pkg/librarysrv"
)

// LoadSet resolves a set into fully loaded user records: set info,
// every member page, then record details for each member.
func (uc *implUseCase) LoadSet(ctx context.Context, sc model.Scope, input user.LoadSetInput) (user.LoadOutput, error) {
	setID := strings.TrimSpace(input.SetID)
	if setID == "" {
		return user.LoadOutput{}, user.ErrSetIDRequired
	}

	setInfo, err := uc.platformRepo.GetSet(ctx, setID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.LoadOutput{}, user.ErrSetNotFound
		}
		uc.l.Errorf(ctx, "user.usecase.LoadSet: get set %s: %v", setID, err)
		return user.LoadOutput{}, err
	}

	if !setInfo.IsUserContent() {
		uc.l.Warnf(ctx, "user.usecase.LoadSet: set %s holds %s records", setID, setContentDesc(setInfo))
		return user.LoadOutput{}, user.ErrNotUserSet
	}

	members, err := uc.fetchAllMembers(ctx, setID)
	if err != nil {
		return user.LoadOutput{}, err
	}

	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}

	users, err := uc.fetchUserDetails(ctx, ids)
	if err != nil {
		return user.LoadOutput{}, err
	}

	return user.LoadOutput{
		SetInfo: setInfo,
		Users:   users,
		Summary: user.Summarize(users),
	}, nil
}

// LoadUsers loads records for an explicit ID list.
func (uc *implUseCase) LoadUsers(ctx context.Context, sc model.Scope, input user.LoadUsersInput) (user.LoadOutput, error) {
	ids := make([]string, 0, len(input.UserIDs))
	for _, id := range input.UserIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return user.LoadOutput{}, user.ErrNoUserIDs
	}

	users, err := uc.fetchUserDetails(ctx, ids)
	if err != nil {
		return user.LoadOutput{}, err
	}

	return user.LoadOutput{
		Users:   users,
		Summary: user.Summarize(users),
	}, nil
}

// fetchAllMembers pages through the member listing until a short page.
func (uc *implUseCase) fetchAllMembers(ctx context.Context, setID string) ([]model.SetMember, error) {
	var all []model.SetMember
	for offset := 0; ; offset += librarysrv.MemberPageSize {
		page, err := uc.platformRepo.GetSetMembers(ctx, setID, offset)
		if err != nil {
			uc.l.Errorf(ctx, "user.usecase.fetchAllMembers: set %s offset %d: %v", setID, offset, err)
			return nil, err
		}

		all = append(all, page...)
		if len(page) < librarysrv.MemberPageSize {
			return all, nil
		}
	}
}

// fetchUserDetails loads the full record for each ID with a bounded
// number of parallel reads. A failed fetch yields a load-error
// placeholder in the same position instead of failing the intake.
func (uc *implUseCase) fetchUserDetails(ctx context.Context, ids []string) ([]model.UserRecord, error) {
	users := make([]model.UserRecord, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.config.FetchWorkers)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			rec, err := uc.platformRepo.GetUser(gctx, id)
			if err != nil {
				uc.l.Warnf(gctx, "user.usecase.fetchUserDetails: user %s: %v", id, err)
				users[i] = model.NewLoadErrorRecord(id, "Failed to load user details: "+err.Error())
				return nil
			}
			users[i] = *rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return users, nil
}

func setContentDesc(set *model.SetInfo) string {
	if set.Content == nil || set.Content.Desc == "" {
		return "unknown"
	}
	return set.Content.Desc
}
