package http

import (
	"github.com/gin-gonic/gin"

	"cognitive-router/internal/middleware"
)

// RegisterRoutes maps the context stack endpoints, scoped to the caller via X-User-ID.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/dialogue/sessions", mw.Scope())
	{
		sessions.GET("/:session_id/frames", h.Get)
		sessions.DELETE("/:session_id/frames", h.Clear)
	}
}
