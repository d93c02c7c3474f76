package handler

import (
	"hrdesk/internal/dto"
	"hrdesk/internal/pkg/response"
	"hrdesk/internal/service"
	"hrdesk/internal/telemetry"
	"hrdesk/utils/validate"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	trace        *telemetry.Trace
	adminService *service.AdminService
}

func NewAdminHandler(trace *telemetry.Trace, adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{trace: trace, adminService: adminService}
}

// ListUsers 後台帳號列表
// @Summary 取得後台帳號列表
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param search query string false "姓名、帳號或 email"
// @Success 200 {array} dto.DashboardUserDto
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var query dto.UserSearchQuery
	if cause, respErr := validate.BindQuery(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	users, err := h.adminService.ListUsers(ctx, query)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, users)
}

// CreateUser 新增後台帳號
// @Summary 新增後台帳號（密碼與確認密碼需一致）
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateDashboardUserDto true "帳號資訊"
// @Success 201 {object} dto.DashboardUserDto
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/users [post]
func (h *AdminHandler) CreateUser(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.CreateDashboardUserDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	user, err := h.adminService.CreateUser(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, user)
}

// UpdateUser 更新後台帳號
// @Summary 更新後台帳號名稱或角色
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body dto.UpdateDashboardUserDto true "更新欄位"
// @Success 200 {object} dto.DashboardUserDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseStringParam(c, "id")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.UpdateDashboardUserDto
	if cause, respErr = validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	user, err := h.adminService.UpdateUser(ctx, id, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, user)
}

// DeleteUser 刪除後台帳號
// @Summary 刪除後台帳號
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseStringParam(c, "id")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.adminService.DeleteUser(ctx, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "user deleted"})
}

// Details 管理員資料
// @Summary 取得管理員資料
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AdminDetailsDto
// @Router /admin/details [get]
func (h *AdminHandler) Details(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	details, err := h.adminService.Details(ctx)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, details)
}

// UpdateDetails 更新管理員資料
// @Summary 更新管理員資料；改密碼需提供目前密碼
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.UpdateAdminDetailsDto true "管理員資料"
// @Success 200 {object} dto.AdminDetailsDto
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/details [put]
func (h *AdminHandler) UpdateDetails(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.UpdateAdminDetailsDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	details, err := h.adminService.UpdateDetails(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, details)
}
