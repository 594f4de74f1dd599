package usecase

import (
	"time"

	"usernotes-srv/internal/notes"
	"usernotes-srv/pkg/log"
)

type implUseCase struct {
	l   log.Logger
	loc *time.Location
}

// New creates a new notes UseCase implementation. Date-only values are
// interpreted in loc; pass nil for the system local zone.
func New(l log.Logger, loc *time.Location) notes.UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &implUseCase{
		l:   l,
		loc: loc,
	}
}
