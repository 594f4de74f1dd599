package http

import (
	"usernotes-srv/internal/job"
	"usernotes-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Preview - Derive the menu state and executability of a configuration
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processPreviewRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "job.delivery.http.Preview: processPreviewRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := job.PreviewInput{
		Parameters: toParameters(req.Parameters),
		Intake:     req.Intake.toIntake(),
	}

	// 3. Call UseCase
	output, err := h.uc.Preview(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "job.delivery.http.Preview: usecase Preview failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	response.OK(c, h.newPreviewResp(output))
}

// Create - Validate a configuration and start the batch
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "job.delivery.http.Create: processCreateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	input := job.CreateInput{
		Parameters: toParameters(req.Parameters),
		Intake:     req.Intake.toIntake(),
	}

	output, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "job.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, createResp{
		RunID:  output.RunID,
		Status: string(output.Status),
	})
}

// Get - Fetch one run with live progress
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc := h.processGetRequest(c)

	run, err := h.uc.Get(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "job.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newRunResp(run))
}

// List - List runs, newest first
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "job.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.List(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "job.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(output))
}

// GetLogs - Page through the per-user process logs of a run
func (h *handler) GetLogs(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processGetLogsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "job.delivery.http.GetLogs: processGetLogsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.GetLogs(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "job.delivery.http.GetLogs: usecase GetLogs failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newLogsResp(output))
}
