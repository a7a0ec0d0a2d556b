package http

import (
	"github.com/gin-gonic/gin"

	"cognitive-router/pkg/response"
)

// Route godoc
// @Summary     Route one user turn
// @Description Classifies the message, resolves its entities and returns the routing decision.
// @Description Ambiguous or incomplete turns still succeed; see clarification and missing_slots.
// @Tags        Router
// @Accept      json
// @Produce     json
// @Param       body body     routeReq true "User turn"
// @Success     200  {object} router.RoutingResult
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conversation busy"
// @Failure     413  {object} response.Resp "Message too long"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/router/route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	result, err := h.uc.Route(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Route: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, result)
}
