package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"usernotes-srv/internal/model"
	"usernotes-srv/internal/user/repository"
)

func (r *implRepository) GetNoteTypes(ctx context.Context) ([]model.NoteType, error) {
	raw, err := r.redis.Get(ctx, noteTypesKey)
	if err != nil {
		if err == goredis.Nil {
			return nil, repository.ErrCacheMiss
		}
		r.l.Warnf(ctx, "user.repository.redis.GetNoteTypes: %v", err)
		return nil, repository.ErrCacheMiss
	}

	var types []model.NoteType
	if err := json.Unmarshal([]byte(raw), &types); err != nil {
		r.l.Warnf(ctx, "user.repository.redis.GetNoteTypes: corrupt cache entry: %v", err)
		return nil, repository.ErrCacheMiss
	}

	return types, nil
}

func (r *implRepository) SetNoteTypes(ctx context.Context, types []model.NoteType, ttl time.Duration) error {
	raw, err := json.Marshal(types)
	if err != nil {
		return err
	}
	return r.redis.Set(ctx, noteTypesKey, string(raw), ttl)
}
