package http

import (
	"usernotes-srv/internal/job"
	"usernotes-srv/internal/middleware"
	"usernotes-srv/pkg/discord"
	"usernotes-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho job HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      job.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc job.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
