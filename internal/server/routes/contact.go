package routes

import (
	"github.com/osa911/contactrelay/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes.
// Preflight and submission share one handler, as on API Gateway.
func SetupContactRoutes(router *gin.Engine, contact *handlers.ContactHandler) {
	router.POST("/contact", contact.Submit)
	router.OPTIONS("/contact", contact.Submit)
}
