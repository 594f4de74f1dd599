package usecase

import (
	"usernotes-srv/internal/job"
	"usernotes-srv/internal/job/repository"
	"usernotes-srv/internal/notes"
	"usernotes-srv/internal/user"
	"usernotes-srv/pkg/log"
)

type implUseCase struct {
	repo      repository.PostgresRepository
	cacheRepo repository.CacheRepository
	notesUC   notes.UseCase
	userUC    user.UseCase
	publisher job.EventPublisher
	l         log.Logger
}

// New creates a new job UseCase implementation.
func New(
	repo repository.PostgresRepository,
	cacheRepo repository.CacheRepository,
	notesUC notes.UseCase,
	userUC user.UseCase,
	publisher job.EventPublisher,
	l log.Logger,
) job.UseCase {
	return &implUseCase{
		repo:      repo,
		cacheRepo: cacheRepo,
		notesUC:   notesUC,
		userUC:    userUC,
		publisher: publisher,
		l:         l,
	}
}
