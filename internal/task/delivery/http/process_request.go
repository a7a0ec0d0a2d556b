package http

import (
	"github.com/gin-gonic/gin"

	"cognitive-router/internal/middleware"
	"cognitive-router/internal/model"
	"cognitive-router/internal/task"
)

func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, h.mapError(task.ErrEmptyOwner)
	}
	return sc, nil
}

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (model.Scope, createReq, error) {
	var req createReq
	sc, err := h.scope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, req.validate()
}

// processListReq binds and validates the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (model.Scope, listReq, error) {
	var req listReq
	sc, err := h.scope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, err
	}
	return sc, req, req.validate()
}

// processCompleteReq reads the task id from the URI.
func (h *handler) processCompleteReq(c *gin.Context) (model.Scope, string, error) {
	sc, err := h.scope(c)
	if err != nil {
		return sc, "", err
	}
	id := c.Param("id")
	if id == "" {
		return sc, "", errMissingID
	}
	return sc, id, nil
}
