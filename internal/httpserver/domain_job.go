package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	jobHTTP "usernotes-srv/internal/job/delivery/http"
	jobProducer "usernotes-srv/internal/job/delivery/kafka/producer"
	jobPostgre "usernotes-srv/internal/job/repository/postgre"
	jobRedis "usernotes-srv/internal/job/repository/redis"
	jobUsecase "usernotes-srv/internal/job/usecase"
	"usernotes-srv/internal/middleware"
	notesUsecase "usernotes-srv/internal/notes/usecase"
)

func (srv *HTTPServer) setupJobDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	srv.jobRepo = jobPostgre.New(srv.postgresDB, srv.l)
	cacheRepo := jobRedis.New(srv.redisClient, srv.l)

	publisher := jobProducer.New(srv.kafkaProducer, srv.l)

	notesUC := notesUsecase.New(srv.l, time.Local)

	uc := jobUsecase.New(srv.jobRepo, cacheRepo, notesUC, srv.userUC, publisher, srv.l)

	handler := jobHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Job domain registered")
	return nil
}
