package middleware

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"modcms/internal/domain/record"
	"modcms/internal/shared/constants"
	"modcms/internal/shared/logger"
)

// RequestID reuses the caller's X-Request-ID or generates one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(constants.HeaderXRequestID))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(constants.ContextKeyRequestID, id)
		c.Header(constants.HeaderXRequestID, id)
		c.Next()
	}
}

// Timeout bounds the request context.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Actor reads the acting user id that an upstream proxy put in X-User-ID and
// attaches it to the request context for audit columns. Malformed values are
// ignored.
func Actor(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(constants.HeaderXUserID))
		if raw == "" {
			c.Next()
			return
		}

		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			log.Warnw("ignoring malformed user id header", "value", raw)
			c.Next()
			return
		}

		c.Set(constants.ContextKeyUserID, uint(id))
		c.Request = c.Request.WithContext(record.WithActor(c.Request.Context(), uint(id)))
		c.Next()
	}
}
