package http

import (
	"github.com/gin-gonic/gin"

	"cognitive-router/pkg/response"
)

// Get godoc
// @Summary     Inspect a context stack
// @Description Returns the paused dialogue frames of one conversation, bottom to top.
// @Tags        Dialogue
// @Produce     json
// @Param       X-User-ID  header string true "Caller id"
// @Param       session_id path   string true "Session id"
// @Success     200 {object} stackResp
// @Failure     401 {object} response.Resp "Missing X-User-ID"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dialogue/sessions/{session_id}/frames [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	key, err := h.processKey(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	frames, err := h.uc.Get(ctx, key)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStackResp(key, frames))
}

// Clear godoc
// @Summary     Clear a context stack
// @Description Drops every paused frame of one conversation.
// @Tags        Dialogue
// @Produce     json
// @Param       X-User-ID  header string true "Caller id"
// @Param       session_id path   string true "Session id"
// @Success     200 {object} stackResp
// @Failure     401 {object} response.Resp "Missing X-User-ID"
// @Failure     409 {object} response.Resp "Conversation busy"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dialogue/sessions/{session_id}/frames [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	key, err := h.processKey(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Clear(ctx, key); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStackResp(key, nil))
}
