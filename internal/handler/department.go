package handler

import (
	"hrdesk/internal/dto"
	"hrdesk/internal/pkg/response"
	"hrdesk/internal/service"
	"hrdesk/internal/telemetry"
	"hrdesk/utils/validate"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	trace             *telemetry.Trace
	departmentService *service.DepartmentService
}

func NewDepartmentHandler(trace *telemetry.Trace, departmentService *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{trace: trace, departmentService: departmentService}
}

// List 部門列表
// @Summary 取得部門列表（含人數）
// @Tags Department
// @Security BearerAuth
// @Produce json
// @Param search query string false "部門名稱"
// @Success 200 {array} dto.DepartmentDto
// @Router /departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var query dto.DepartmentQuery
	if cause, respErr := validate.BindQuery(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.departmentService.List(ctx, query)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Get 部門與成員
// @Summary 取得部門與成員
// @Tags Department
// @Security BearerAuth
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.DepartmentDetailDto
// @Failure 404 {object} response.Response
// @Router /departments/{id} [get]
func (h *DepartmentHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseIntParam(c, "id")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.departmentService.Get(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}
