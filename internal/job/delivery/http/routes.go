package http

import (
	"usernotes-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/jobs/preview", h.Preview)
		api.POST("/jobs", h.Create)
		api.GET("/jobs", h.List)
		api.GET("/jobs/:job_id", h.Get)
		api.GET("/jobs/:job_id/logs", h.GetLogs)
	}
}
