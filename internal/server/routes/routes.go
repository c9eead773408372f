package routes

import (
	"github.com/osa911/contactrelay/internal/api/middleware"
	"github.com/osa911/contactrelay/internal/logging"
	basemiddleware "github.com/osa911/contactrelay/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Setup configures all routes
func Setup(router *gin.Engine, h *Handlers, allowedOrigin string) {
	logger := logging.GetGlobalLogger()

	SetupHealthRoutes(router, h.Health, h.Metrics, allowedOrigin)
	SetupContactRoutes(router, h.Contact)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, serviceName string) {
	router.Use(basemiddleware.RequestID())
	router.Use(basemiddleware.Recovery(logger))
	router.Use(otelgin.Middleware(serviceName))
	router.Use(middleware.RequestLogger(logger))
}
