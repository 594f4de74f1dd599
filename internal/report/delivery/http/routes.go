package http

import (
	"usernotes-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/jobs/:job_id/report", h.Generate)
		api.GET("/jobs/:job_id/report", h.Download)
	}
}
