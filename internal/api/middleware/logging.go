package middleware

import (
	"time"

	"github.com/osa911/contactrelay/internal/logging"
	"github.com/osa911/contactrelay/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger is a middleware that logs request information.
// It only logs when the logger has request logging enabled.
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	if !logger.RequestsEnabled() {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.LogHTTPRequest(
			method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
