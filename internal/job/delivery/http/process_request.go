package http

import (
	"usernotes-srv/internal/job"
	"usernotes-srv/internal/model"
	"usernotes-srv/pkg/paginator"
	"usernotes-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processPreviewRequest(c *gin.Context) (previewReq, model.Scope, error) {
	var req previewReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processCreateRequest(c *gin.Context) (createReq, model.Scope, error) {
	var req createReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processGetRequest(c *gin.Context) (job.GetInput, model.Scope) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	return job.GetInput{RunID: c.Param("job_id")}, sc
}

func (h *handler) processListRequest(c *gin.Context) (job.ListInput, model.Scope, error) {
	var pq paginator.PaginateQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		return job.ListInput{}, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return job.ListInput{Paginate: pq}, sc, nil
}

func (h *handler) processGetLogsRequest(c *gin.Context) (job.GetLogsInput, model.Scope, error) {
	var pq paginator.PaginateQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		return job.GetLogsInput{}, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return job.GetLogsInput{
		RunID:    c.Param("job_id"),
		Paginate: pq,
	}, sc, nil
}
