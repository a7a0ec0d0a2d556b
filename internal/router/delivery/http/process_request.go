package http

import (
	"github.com/gin-gonic/gin"

	"cognitive-router/internal/middleware"
)

// processRouteReq binds the turn. The caller may identify itself in the body
// or through X-User-ID; the body wins.
func (h *handler) processRouteReq(c *gin.Context) (routeReq, error) {
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.UserID == "" {
		req.UserID = c.GetHeader(middleware.HeaderUserID)
	}
	if req.UserID == "" {
		return req, errMissingUser
	}
	return req, nil
}
