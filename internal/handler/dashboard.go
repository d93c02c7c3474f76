package handler

import (
	"hrdesk/internal/dto"
	"hrdesk/internal/pkg/response"
	"hrdesk/internal/service"
	"hrdesk/internal/telemetry"
	"hrdesk/utils/validate"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	trace            *telemetry.Trace
	dashboardService *service.DashboardService
}

func NewDashboardHandler(trace *telemetry.Trace, dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{trace: trace, dashboardService: dashboardService}
}

// Summary 儀表板
// @Summary 儀表板統計
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param date query string false "統計日期 YYYY-MM-DD，預設 DASHBOARD__REFERENCE_DATE 或今天"
// @Success 200 {object} dto.DashboardSummaryDto
// @Failure 400 {object} response.Response
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var query dto.DashboardQuery
	if cause, respErr := validate.BindQuery(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	summary, err := h.dashboardService.Summary(ctx, query)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, summary)
}
