package repository

import (
	"context"
	"time"

	"usernotes-srv/internal/model"
)

// PlatformRepository reads and writes user records through the
// upstream library platform API.
//
//go:generate mockery --name PlatformRepository
type PlatformRepository interface {
	GetSet(ctx context.Context, setID string) (*model.SetInfo, error)
	GetSetMembers(ctx context.Context, setID string, offset int) ([]model.SetMember, error)
	GetUser(ctx context.Context, userID string) (*model.UserRecord, error)
	UpdateUser(ctx context.Context, userID string, record model.UserRecord) error
	GetNoteTypes(ctx context.Context) ([]model.NoteType, error)
}

// CacheRepository caches slow-changing platform lookups.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetNoteTypes(ctx context.Context) ([]model.NoteType, error)
	SetNoteTypes(ctx context.Context, types []model.NoteType, ttl time.Duration) error
}
