package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"modcms/internal/infrastructure/ratelimit"
	"modcms/internal/shared/constants"
	apperrors "modcms/internal/shared/errors"
	"modcms/internal/shared/logger"
	"modcms/internal/shared/utils"
)

// WriteRateLimit throttles mutating requests per actor, or per client IP for
// anonymous callers. Reads pass through. Limiter failures let the request in.
func WriteRateLimit(limiter ratelimit.Limiter, limits ratelimit.Limits, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if uid, ok := c.Get(constants.ContextKeyUserID); ok {
			key = fmt.Sprintf("user:%v", uid)
		}

		allowed, err := limiter.Allow(c.Request.Context(), key, limits)
		if err != nil {
			log.Warnw("rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}
		if !allowed {
			log.Infow("write rate limit exceeded", "key", key, "path", c.Request.URL.Path)
			utils.ErrorResponseWithError(c, apperrors.New(apperrors.KindRateLimited, "too many write requests"))
			c.Abort()
			return
		}

		c.Next()
	}
}
