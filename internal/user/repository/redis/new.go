package redis

import (
	"usernotes-srv/internal/user/repository"
	"usernotes-srv/pkg/log"
	pkgredis "usernotes-srv/pkg/redis"
)

const noteTypesKey = "usernotes:note_types"

type implRepository struct {
	redis pkgredis.IRedis
	l     log.Logger
}

// New creates a new redis-backed cache repository.
func New(redisClient pkgredis.IRedis, l log.Logger) repository.CacheRepository {
	return &implRepository{
		redis: redisClient,
		l:     l,
	}
}
