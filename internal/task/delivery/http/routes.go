package http

import (
	"github.com/gin-gonic/gin"

	"cognitive-router/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every task route is scoped to the caller via X-User-ID.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Scope())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.POST("/:id/complete", h.Complete)
	}
}
