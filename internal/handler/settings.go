package handler

import (
	"hrdesk/internal/dto"
	"hrdesk/internal/pkg/response"
	"hrdesk/internal/service"
	"hrdesk/internal/telemetry"
	"hrdesk/utils/validate"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	trace           *telemetry.Trace
	settingsService *service.SettingsService
}

func NewSettingsHandler(trace *telemetry.Trace, settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{trace: trace, settingsService: settingsService}
}

// Get 介面設定
// @Summary 取得主題、版面、字級與頭像
// @Tags Settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.SettingsDto
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	settings, err := h.settingsService.Get(ctx)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, settings)
}

// Update 更新介面設定
// @Summary 更新介面設定（只寫入有帶的欄位）
// @Tags Settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.UpdateSettingsDto true "設定"
// @Success 200 {object} dto.SettingsDto
// @Failure 400 {object} response.Response
// @Router /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.UpdateSettingsDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	settings, err := h.settingsService.Update(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, settings)
}

// ToggleTheme 切換深淺色
// @Summary 切換 light / dark
// @Tags Settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.SettingsDto
// @Router /settings/theme/toggle [post]
func (h *SettingsHandler) ToggleTheme(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	settings, err := h.settingsService.ToggleTheme(ctx)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, settings)
}
