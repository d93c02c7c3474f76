package router

import (
	"hrdesk/internal/handler"

	"github.com/gin-gonic/gin"
)

// HealthRouter 探針與版本，不經過登入閘門
type HealthRouter struct {
	healthHandler *handler.HealthHandler
}

func NewHealthRouter(healthHandler *handler.HealthHandler) *HealthRouter {
	return &HealthRouter{healthHandler: healthHandler}
}

func (hr *HealthRouter) RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health-check", hr.healthHandler.HealthCheck)
	r.HEAD("/health-check", hr.healthHandler.HealthCheck)
	r.GET("/version", hr.healthHandler.Version)

	probes := r.Group("/health")
	{
		probes.GET("/liveness", hr.healthHandler.Liveness)
		probes.GET("/readiness", hr.healthHandler.Readiness)
	}
}
