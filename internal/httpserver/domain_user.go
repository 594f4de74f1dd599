package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"usernotes-srv/internal/middleware"
	userHTTP "usernotes-srv/internal/user/delivery/http"
	userPlatform "usernotes-srv/internal/user/repository/platform"
	userRedis "usernotes-srv/internal/user/repository/redis"
	userUsecase "usernotes-srv/internal/user/usecase"
)

func (srv *HTTPServer) setupUserDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	platformRepo := userPlatform.New(srv.libraryClient, srv.l)
	cacheRepo := userRedis.New(srv.redisClient, srv.l)

	srv.userUC = userUsecase.New(platformRepo, cacheRepo, srv.l, userUsecase.Config{
		FetchWorkers: srv.config.Platform.FetchWorkers,
	})

	handler := userHTTP.New(srv.l, srv.userUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}
