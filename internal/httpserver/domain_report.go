package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"usernotes-srv/internal/middleware"
	reportHTTP "usernotes-srv/internal/report/delivery/http"
	reportUsecase "usernotes-srv/internal/report/usecase"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := reportUsecase.New(srv.jobRepo, srv.minioClient, srv.l, reportUsecase.Config{
		ReportBucket: srv.config.MinIO.Bucket,
	})

	handler := reportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered")
	return nil
}
