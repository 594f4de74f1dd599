package http

import (
	"usernotes-srv/internal/model"
	"usernotes-srv/internal/report"
	"usernotes-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGenerateRequest(c *gin.Context) (report.GenerateInput, model.Scope) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	return report.GenerateInput{RunID: c.Param("job_id")}, sc
}

func (h *handler) processDownloadRequest(c *gin.Context) (report.DownloadInput, model.Scope) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	return report.DownloadInput{RunID: c.Param("job_id")}, sc
}
