package handler

import (
	"hrdesk/internal/dto"
	"hrdesk/internal/pkg/response"
	"hrdesk/internal/service"
	"hrdesk/internal/telemetry"
	"hrdesk/utils/validate"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	trace       *telemetry.Trace
	authService *service.AuthService
}

func NewAuthHandler(trace *telemetry.Trace, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{trace: trace, authService: authService}
}

// Login 登入
// @Summary 登入（任何非空 email 都可登入）
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.LoginDto true "登入資訊"
// @Success 200 {object} dto.SessionDto
// @Failure 400 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.LoginDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	session, err := h.authService.Login(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, session)
}

// Logout 登出
// @Summary 登出，清除 session slot
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	if err := h.authService.Logout(ctx); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "logged out"})
}

// Session 目前登入狀態
// @Summary 取得目前登入狀態
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.SessionDto
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	session, err := h.authService.Session(ctx)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, session)
}
