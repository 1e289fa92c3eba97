package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pixelpirates/leaderboard/internal/apperr"
	"github.com/pixelpirates/leaderboard/internal/response"
)

// Recovery returns a middleware that recovers from panics and logs them.
// The client receives the generic internal error envelope.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Errorw("panic recovered",
					"error", err,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"request_id", c.GetString(RequestIDKey),
					"stack", string(debug.Stack()),
				)

				response.Fail(c, http.StatusInternalServerError, apperr.MsgInternal)
				c.Abort()
			}
		}()

		c.Next()
	}
}
