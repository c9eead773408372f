package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS header values shared by every contact relay response
const (
	AllowedMethods = "POST, OPTIONS"
	AllowedHeaders = "Content-Type"
	MaxAge         = "86400" // 24 hours
)

// CORSHeaders returns the full response header set for origin.
// An empty origin is treated as "*".
func CORSHeaders(origin string) map[string]string {
	if origin == "" {
		origin = "*"
	}
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  origin,
		"Access-Control-Allow-Methods": AllowedMethods,
		"Access-Control-Allow-Headers": AllowedHeaders,
		"Access-Control-Max-Age":       MaxAge,
	}
}

// CORS middleware applies the relay's CORS headers to auxiliary routes
// and answers preflight requests for them.
func CORS(origin string) gin.HandlerFunc {
	headers := CORSHeaders(origin)
	delete(headers, "Content-Type")

	return func(c *gin.Context) {
		for k, v := range headers {
			c.Writer.Header().Set(k, v)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
