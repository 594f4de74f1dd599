package http

import (
	"usernotes-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// NoteTypes - Return the note type catalog used by the configuration menus
func (h *handler) NoteTypes(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Call UseCase
	types, err := h.uc.NoteTypes(ctx)
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.NoteTypes: usecase NoteTypes failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 2. Return response
	response.OK(c, newNoteTypesResp(types))
}
