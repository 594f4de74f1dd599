package http

import (
	"usernotes-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Generate - Build and store the CSV result report of a finished run
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc := h.processGenerateRequest(c)

	output, err := h.uc.Generate(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Generate: usecase Generate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newGenerateResp(output))
}

// Download - Presigned download URL for a stored report
func (h *handler) Download(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc := h.processDownloadRequest(c)

	output, err := h.uc.Download(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Download: usecase Download failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newDownloadResp(output))
}
