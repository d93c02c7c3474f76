package handler

import (
	"hrdesk/internal/dto"
	"hrdesk/internal/pkg/response"
	"hrdesk/internal/service"
	"hrdesk/internal/telemetry"
	"hrdesk/utils/validate"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	trace           *telemetry.Trace
	calendarService *service.CalendarService
}

func NewCalendarHandler(trace *telemetry.Trace, calendarService *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{trace: trace, calendarService: calendarService}
}

// List 行事曆
// @Summary 取得行事曆事件（date 優先於 month）
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Param date query string false "YYYY-MM-DD"
// @Param month query string false "YYYY-MM"
// @Success 200 {array} model.CalendarEvent
// @Failure 400 {object} response.Response
// @Router /calendar [get]
func (h *CalendarHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var query dto.CalendarQuery
	if cause, respErr := validate.BindQuery(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	events, err := h.calendarService.List(ctx, query)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, events)
}

// Create 新增行事曆事件
// @Summary 新增行事曆事件
// @Tags Calendar
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateCalendarEventDto true "事件"
// @Success 201 {object} model.CalendarEvent
// @Failure 400 {object} response.Response
// @Router /calendar [post]
func (h *CalendarHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.CreateCalendarEventDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	event, err := h.calendarService.Create(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, event)
}

// Delete 刪除行事曆事件
// @Summary 刪除行事曆事件
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /calendar/{id} [delete]
func (h *CalendarHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseStringParam(c, "id")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.calendarService.Delete(ctx, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "calendar event deleted"})
}
