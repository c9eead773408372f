package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UnknownClient is reported when no source address can be determined
const UnknownClient = "Unknown"

// ResolveClientIP extracts the client IP from proxy headers, falling back to
// the transport-level source address. Header lookup is case-insensitive.
func ResolveClientIP(headers http.Header, sourceIP string) string {
	// X-Forwarded-For can be a comma-separated list
	// Format: client, proxy1, proxy2, ...
	// We want the first (leftmost) IP which is the client
	if forwardedFor := headers.Get("X-Forwarded-For"); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		if clientIP := strings.TrimSpace(first); clientIP != "" {
			return clientIP
		}
	}

	if ip := strings.TrimSpace(headers.Get("X-Real-IP")); ip != "" {
		return ip
	}

	if sourceIP != "" {
		return sourceIP
	}

	return UnknownClient
}

// ResolveUserAgent returns the User-Agent header or UnknownClient
func ResolveUserAgent(headers http.Header) string {
	if ua := headers.Get("User-Agent"); ua != "" {
		return ua
	}
	return UnknownClient
}

// GetRealIP resolves the client IP of a gin request
func GetRealIP(c *gin.Context) string {
	return ResolveClientIP(c.Request.Header, c.RemoteIP())
}
