package handler

import (
	"hrdesk/internal/dto"
	"hrdesk/internal/pkg/response"
	"hrdesk/internal/service"
	"hrdesk/internal/telemetry"
	"hrdesk/utils/validate"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	trace              *telemetry.Trace
	applicationService *service.ApplicationService
}

func NewApplicationHandler(trace *telemetry.Trace, applicationService *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{trace: trace, applicationService: applicationService}
}

// List 假單列表
// @Summary 取得假單列表
// @Tags Application
// @Security BearerAuth
// @Produce json
// @Param search query string false "員工姓名、員工編號或原因"
// @Param status query string false "pending | in-progress | approved | rejected"
// @Success 200 {array} dto.ApplicationItemDto
// @Failure 400 {object} response.Response
// @Router /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var query dto.ApplicationQuery
	if cause, respErr := validate.BindQuery(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	items, err := h.applicationService.List(ctx, query)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, items)
}

// History 員工假單歷史
// @Summary 取得單一員工的假單歷史
// @Tags Application
// @Security BearerAuth
// @Produce json
// @Param employeeId path string true "Employee ID"
// @Success 200 {array} dto.ApplicationItemDto
// @Router /applications/history/{employeeId} [get]
func (h *ApplicationHandler) History(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	employeeID, cause, respErr := validate.ParseStringParam(c, "employeeId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	items, err := h.applicationService.History(ctx, employeeID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, items)
}

// Create 送出假單
// @Summary 送出假單（狀態 pending）
// @Tags Application
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateApplicationDto true "假單"
// @Success 201 {object} model.LeaveApplication
// @Failure 400 {object} response.Response
// @Router /applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.CreateApplicationDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	application, err := h.applicationService.Create(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, application)
}

// ChangeStatus 審核假單
// @Summary 變更假單狀態
// @Tags Application
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param body body dto.UpdateApplicationStatusDto true "狀態"
// @Success 200 {object} model.LeaveApplication
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /applications/{id}/status [patch]
func (h *ApplicationHandler) ChangeStatus(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseStringParam(c, "id")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.UpdateApplicationStatusDto
	if cause, respErr = validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	application, err := h.applicationService.ChangeStatus(ctx, id, req.Status)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, application)
}

// Delete 刪除假單
// @Summary 刪除假單
// @Tags Application
// @Security BearerAuth
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseStringParam(c, "id")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.applicationService.Delete(ctx, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "application deleted"})
}
