package handler

import (
	"net/http"

	"hrdesk/config"
	"hrdesk/internal/pkg/response"
	"hrdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	config       *config.Configuration
	healthStatus *service.HealthService
}

func NewHealthHandler(config *config.Configuration, status *service.HealthService) *HealthHandler {
	return &HealthHandler{config: config, healthStatus: status}
}

// HealthCheck
// @Summary 服務存活檢查
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Router /health-check [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, response.Response{
		Code:        0,
		Data:        "ok",
		Message:     "success",
		Description: "service is alive",
	})
	c.Abort()
}

// Version
// @Summary 服務版本
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /version [get]
func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    h.config.App.Name,
		"version": h.config.App.Version,
		"env":     h.config.App.Env,
		"uptime":  h.healthStatus.Uptime().String(),
	})
}

func (h *HealthHandler) Liveness(c *gin.Context) {
	if h.healthStatus.IsLive() {
		c.JSON(http.StatusOK, gin.H{"status": "alive"})
		return
	}
	c.Status(http.StatusServiceUnavailable)
}

// Readiness 所有 slot 載入完成後才 ready
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.healthStatus.IsReady() {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
		return
	}
	c.Status(http.StatusServiceUnavailable)
}
