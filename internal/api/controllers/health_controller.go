package controllers

import (
	"github.com/gin-gonic/gin"

	"placefinder/pkg/utils"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /health [get]
func (h *HealthController) Health(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
}
