package usecase

import (
	"time"

	"usernotes-srv/internal/user"
	"usernotes-srv/internal/user/repository"
	"usernotes-srv/pkg/log"
)

const (
	// defaultFetchWorkers bounds the parallel record fetches during
	// intake. Reads only; all writes stay strictly sequential.
	defaultFetchWorkers = 8
	// noteTypesTTL is how long the note type catalog stays cached.
	noteTypesTTL = 12 * time.Hour
)

// Config holds user intake configuration.
type Config struct {
	FetchWorkers int
}

type implUseCase struct {
	platformRepo repository.PlatformRepository
	cacheRepo    repository.CacheRepository
	l            log.Logger
	config       Config
}

// New creates a new user UseCase implementation.
func New(
	platformRepo repository.PlatformRepository,
	cacheRepo repository.CacheRepository,
	l log.Logger,
	cfg Config,
) user.UseCase {
	if cfg.FetchWorkers <= 0 {
		cfg.FetchWorkers = defaultFetchWorkers
	}

	return &implUseCase{
		platformRepo: platformRepo,
		cacheRepo:    cacheRepo,
		l:            l,
		config:       cfg,
	}
}
