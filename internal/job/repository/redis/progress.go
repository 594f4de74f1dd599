package redis

import (
	"context"
	"encoding/json"

	goredis "github.com/redis/go-redis/v9"

	"usernotes-srv/internal/job/repository"
)

func (r *implRepository) SetProgress(ctx context.Context, runID string, p repository.Progress) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.redis.Set(ctx, progressKeyPrefix+runID, string(raw), progressTTL)
}

func (r *implRepository) GetProgress(ctx context.Context, runID string) (repository.Progress, error) {
	raw, err := r.redis.Get(ctx, progressKeyPrefix+runID)
	if err != nil {
		if err == goredis.Nil {
			return repository.Progress{}, repository.ErrProgressMiss
		}
		r.l.Warnf(ctx, "job.repository.redis.GetProgress: %v", err)
		return repository.Progress{}, repository.ErrProgressMiss
	}

	var p repository.Progress
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return repository.Progress{}, repository.ErrProgressMiss
	}
	return p, nil
}

func (r *implRepository) DeleteProgress(ctx context.Context, runID string) error {
	return r.redis.Delete(ctx, progressKeyPrefix+runID)
}
