package platform

import (
	"usernotes-srv/internal/user/repository"
	"usernotes-srv/pkg/librarysrv"
	"usernotes-srv/pkg/log"
)

type implRepository struct {
	client librarysrv.ILibrary
	l      log.Logger
}

// New creates a new platform-backed repository.
func New(client librarysrv.ILibrary, l log.Logger) repository.PlatformRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
