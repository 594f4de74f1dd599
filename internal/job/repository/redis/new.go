package redis

import (
	"time"

	"usernotes-srv/internal/job/repository"
	"usernotes-srv/pkg/log"
	pkgredis "usernotes-srv/pkg/redis"
)

const (
	progressKeyPrefix = "usernotes:job:progress:"
	progressTTL       = 24 * time.Hour
)

type implRepository struct {
	redis pkgredis.IRedis
	l     log.Logger
}

// New creates a new redis-backed progress repository.
func New(redisClient pkgredis.IRedis, l log.Logger) repository.CacheRepository {
	return &implRepository{
		redis: redisClient,
		l:     l,
	}
}
