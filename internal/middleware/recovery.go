package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/osa911/contactrelay/internal/api/dto/common"
	"github.com/osa911/contactrelay/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery turns panics into the relay's JSON error envelope
func Recovery(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("[PANIC] %s %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					c.GetString(ContextKeyRequestID),
					err,
					debug.Stack(),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, common.NewErrorResponse(common.MsgInternalServer))
			}
		}()

		c.Next()
	}
}
