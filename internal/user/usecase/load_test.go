package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"usernotes-srv/internal/model"
	"usernotes-srv/internal/user"
	"usernotes-srv/internal/user/repository"
	"usernotes-srv/pkg/librarysrv"
	"usernotes-srv/pkg/log"
)

type fakePlatform struct {
	mu sync.Mutex

	set       *model.SetInfo
	setErr    error
	members   []model.SetMember
	users     map[string]*model.UserRecord
	failUsers map[string]error
	noteTypes []model.NoteType

	updated    []string
	memberCall int
}

func (f *fakePlatform) GetSet(ctx context.Context, setID string) (*model.SetInfo, error) {
	if f.setErr != nil {
		return nil, f.setErr
	}
	return f.set, nil
}

func (f *fakePlatform) GetSetMembers(ctx context.Context, setID string, offset int) ([]model.SetMember, error) {
	f.mu.Lock()
	f.memberCall++
	f.mu.Unlock()

	if offset >= len(f.members) {
		return []model.SetMember{}, nil
	}
	end := offset + librarysrv.MemberPageSize
	if end > len(f.members) {
		end = len(f.members)
	}
	return f.members[offset:end], nil
}

func (f *fakePlatform) GetUser(ctx context.Context, userID string) (*model.UserRecord, error) {
	if err, ok := f.failUsers[userID]; ok {
		return nil, err
	}
	if rec, ok := f.users[userID]; ok {
		clone := rec.Clone()
		return &clone, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakePlatform) UpdateUser(ctx context.Context, userID string, record model.UserRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = append(f.updated, userID)
	return nil
}

func (f *fakePlatform) GetNoteTypes(ctx context.Context) ([]model.NoteType, error) {
	if f.noteTypes == nil {
		return nil, errors.New("unavailable")
	}
	return f.noteTypes, nil
}

type fakeCache struct {
	mu    sync.Mutex
	types []model.NoteType
}

func (f *fakeCache) GetNoteTypes(ctx context.Context) ([]model.NoteType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.types == nil {
		return nil, repository.ErrCacheMiss
	}
	return f.types, nil
}

func (f *fakeCache) SetNoteTypes(ctx context.Context, types []model.NoteType, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.types = types
	return nil
}

func userSet(id string) *model.SetInfo {
	return &model.SetInfo{
		ID:      id,
		Name:    "Test patrons",
		Content: &model.CodeDesc{Value: "USER", Desc: "User"},
	}
}

func membersN(n int) []model.SetMember {
	out := make([]model.SetMember, n)
	for i := range out {
		out[i] = model.SetMember{ID: fmt.Sprintf("u%d", i)}
	}
	return out
}

func recordsFor(members []model.SetMember) map[string]*model.UserRecord {
	out := make(map[string]*model.UserRecord, len(members))
	for _, m := range members {
		out[m.ID] = &model.UserRecord{PrimaryID: m.ID}
	}
	return out
}

func TestLoadSet(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "staff"}

	t.Run("rejects non user sets", func(t *testing.T) {
		platform := &fakePlatform{
			set: &model.SetInfo{
				ID:      "s1",
				Content: &model.CodeDesc{Value: "BIB_MMS", Desc: "Titles"},
			},
		}
		uc := New(platform, &fakeCache{}, log.NewNop(), Config{})

		_, err := uc.LoadSet(ctx, sc, user.LoadSetInput{SetID: "s1"})
		if !errors.Is(err, user.ErrNotUserSet) {
			t.Errorf("error: got %v, want ErrNotUserSet", err)
		}
	})

	t.Run("missing set maps to not found", func(t *testing.T) {
		platform := &fakePlatform{setErr: repository.ErrNotFound}
		uc := New(platform, &fakeCache{}, log.NewNop(), Config{})

		_, err := uc.LoadSet(ctx, sc, user.LoadSetInput{SetID: "nope"})
		if !errors.Is(err, user.ErrSetNotFound) {
			t.Errorf("error: got %v, want ErrSetNotFound", err)
		}
	})

	t.Run("pages members until a short page", func(t *testing.T) {
		members := membersN(250)
		platform := &fakePlatform{
			set:     userSet("s1"),
			members: members,
			users:   recordsFor(members),
		}
		uc := New(platform, &fakeCache{}, log.NewNop(), Config{})

		out, err := uc.LoadSet(ctx, sc, user.LoadSetInput{SetID: "s1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Users) != 250 {
			t.Errorf("users: got %d, want 250", len(out.Users))
		}
		if platform.memberCall != 3 {
			t.Errorf("member pages fetched: got %d, want 3", platform.memberCall)
		}
	})

	t.Run("full last page needs one extra short fetch", func(t *testing.T) {
		members := membersN(100)
		platform := &fakePlatform{
			set:     userSet("s1"),
			members: members,
			users:   recordsFor(members),
		}
		uc := New(platform, &fakeCache{}, log.NewNop(), Config{})

		out, err := uc.LoadSet(ctx, sc, user.LoadSetInput{SetID: "s1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Users) != 100 {
			t.Errorf("users: got %d, want 100", len(out.Users))
		}
		if platform.memberCall != 2 {
			t.Errorf("member pages fetched: got %d, want 2", platform.memberCall)
		}
	})

	t.Run("failed record fetch becomes a placeholder", func(t *testing.T) {
		members := membersN(3)
		users := recordsFor(members)
		users["u1"].Notes = []model.Note{{Text: "has a note"}}
		platform := &fakePlatform{
			set:       userSet("s1"),
			members:   members,
			users:     users,
			failUsers: map[string]error{"u2": errors.New("timeout")},
		}
		uc := New(platform, &fakeCache{}, log.NewNop(), Config{})

		out, err := uc.LoadSet(ctx, sc, user.LoadSetInput{SetID: "s1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Users) != 3 {
			t.Fatalf("users: got %d, want 3", len(out.Users))
		}
		if out.Users[2].LoadError == "" {
			t.Error("failed fetch must produce a load-error placeholder")
		}
		if out.Users[2].PrimaryID != "u2" {
			t.Errorf("placeholder keeps member position: got %q", out.Users[2].PrimaryID)
		}

		want := user.Summary{Total: 3, WithNotes: 1, WithoutNotes: 1, LoadErrors: 1}
		if out.Summary != want {
			t.Errorf("summary: got %+v, want %+v", out.Summary, want)
		}
	})
}

func TestLoadUsers(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "staff"}

	t.Run("empty list is rejected", func(t *testing.T) {
		uc := New(&fakePlatform{}, &fakeCache{}, log.NewNop(), Config{})
		_, err := uc.LoadUsers(ctx, sc, user.LoadUsersInput{UserIDs: []string{"  ", ""}})
		if !errors.Is(err, user.ErrNoUserIDs) {
			t.Errorf("error: got %v, want ErrNoUserIDs", err)
		}
	})

	t.Run("loads records in input order", func(t *testing.T) {
		members := membersN(5)
		platform := &fakePlatform{users: recordsFor(members)}
		uc := New(platform, &fakeCache{}, log.NewNop(), Config{FetchWorkers: 2})

		out, err := uc.LoadUsers(ctx, sc, user.LoadUsersInput{
			UserIDs: []string{"u4", "u0", "u2"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := []string{out.Users[0].PrimaryID, out.Users[1].PrimaryID, out.Users[2].PrimaryID}
		want := []string{"u4", "u0", "u2"}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
			}
		}
	})
}

func TestNoteTypes(t *testing.T) {
	ctx := context.Background()

	t.Run("cold cache fills from the platform", func(t *testing.T) {
		platform := &fakePlatform{
			noteTypes: []model.NoteType{{Value: "LIBRARY", Desc: "Library"}},
		}
		cache := &fakeCache{}
		uc := New(platform, cache, log.NewNop(), Config{})

		types, err := uc.NoteTypes(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(types) != 1 || types[0].Value != "LIBRARY" {
			t.Errorf("unexpected catalog: %+v", types)
		}
		if cache.types == nil {
			t.Error("catalog should be cached after a platform fetch")
		}
	})

	t.Run("platform failure falls back to defaults", func(t *testing.T) {
		uc := New(&fakePlatform{}, &fakeCache{}, log.NewNop(), Config{})
		types, err := uc.NoteTypes(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(types) != len(model.DefaultNoteTypes) {
			t.Errorf("catalog size: got %d, want %d", len(types), len(model.DefaultNoteTypes))
		}
	})
}
