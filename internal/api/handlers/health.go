package handlers

import (
	"net/http"

	"github.com/osa911/contactrelay/internal/api/dto/common"
	"github.com/osa911/contactrelay/internal/version"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSuccessResponse())
}

func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, version.GetBuildInfo())
}
