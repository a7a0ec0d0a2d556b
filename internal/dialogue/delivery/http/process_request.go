package http

import (
	"github.com/gin-gonic/gin"

	"cognitive-router/internal/dialogue"
	"cognitive-router/internal/middleware"
)

// processKey builds the stack key from the caller scope and the session path param.
func (h *handler) processKey(c *gin.Context) (dialogue.Key, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return dialogue.Key{}, h.mapError(dialogue.ErrInvalidKey)
	}
	return dialogue.Key{UserID: sc.UserID, SessionID: c.Param("session_id")}, nil
}
