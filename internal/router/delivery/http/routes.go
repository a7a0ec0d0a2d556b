package http

import (
	"github.com/gin-gonic/gin"

	"cognitive-router/internal/middleware"
)

// RegisterRoutes maps the router endpoints. Turns are rate limited per caller.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	r := rg.Group("/router", mw.RateLimit())
	{
		r.POST("/route", h.Route)
	}
}
