package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cognitive-router/internal/model"
	pkgErrors "cognitive-router/pkg/errors"
	"cognitive-router/pkg/log"
	"cognitive-router/pkg/response"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderUserID    = "X-User-ID"

	scopeKey = "scope"
)

// RequestID propagates X-Request-ID (or mints one) into the response and the
// request context so every log line of the request carries it.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// RateLimit throttles each client, identified by X-User-ID or its IP.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter == nil {
			c.Next()
			return
		}
		key := c.GetHeader(HeaderUserID)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}
		if !mw.limiter.allow(key) {
			mw.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: limit exceeded for %s", key)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// Scope requires X-User-ID and stores the caller's model.Scope on the context.
func (mw Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID == "" {
			response.Error(c, pkgErrors.NewHTTPError(401, "X-User-ID header is required"), nil)
			c.Abort()
			return
		}
		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// GetScope returns the scope stored by Scope.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
