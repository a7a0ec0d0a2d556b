package http

import (
	"github.com/gin-gonic/gin"

	"cognitive-router/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Stores a pending task for the caller identified by X-User-ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller id"
// @Param       body      body   createReq true "Task data"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Missing X-User-ID"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks, oldest first, with an optional status filter.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true  "Caller id"
// @Param       status    query  string false "pending or completed"
// @Param       limit     query  int    false "Page size (default: 20)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(out))
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks one of the caller's pending tasks as completed.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already completed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processCompleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Complete(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(t))
}
