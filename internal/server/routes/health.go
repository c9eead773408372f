package routes

import (
	"net/http"

	"github.com/osa911/contactrelay/internal/api/handlers"
	"github.com/osa911/contactrelay/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupHealthRoutes configures health, version and metrics endpoints
func SetupHealthRoutes(router *gin.Engine, health *handlers.HealthHandler, metrics http.Handler, allowedOrigin string) {
	public := router.Group("/", middleware.CORS(allowedOrigin))
	{
		public.GET("/health", health.Check)
		public.GET("/version", health.Version)
	}
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}
}
