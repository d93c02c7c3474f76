package router

import (
	"hrdesk/internal/handler"

	"github.com/gin-gonic/gin"
)

// AdminRouter 後台帳號、管理員資料、設定、儀表板與匯出
type AdminRouter struct {
	adminHandler     *handler.AdminHandler
	settingsHandler  *handler.SettingsHandler
	dashboardHandler *handler.DashboardHandler
	exportHandler    *handler.ExportHandler
}

func NewAdminRouter(
	adminHandler *handler.AdminHandler,
	settingsHandler *handler.SettingsHandler,
	dashboardHandler *handler.DashboardHandler,
	exportHandler *handler.ExportHandler,
) *AdminRouter {
	return &AdminRouter{
		adminHandler:     adminHandler,
		settingsHandler:  settingsHandler,
		dashboardHandler: dashboardHandler,
		exportHandler:    exportHandler,
	}
}

func (ar *AdminRouter) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	{
		admin.GET("/users", ar.adminHandler.ListUsers)
		admin.POST("/users", ar.adminHandler.CreateUser)
		admin.PUT("/users/:id", ar.adminHandler.UpdateUser)
		admin.DELETE("/users/:id", ar.adminHandler.DeleteUser)
		admin.GET("/details", ar.adminHandler.Details)
		admin.PUT("/details", ar.adminHandler.UpdateDetails)
	}

	settings := r.Group("/settings")
	{
		settings.GET("", ar.settingsHandler.Get)
		settings.PUT("", ar.settingsHandler.Update)
		settings.POST("/theme/toggle", ar.settingsHandler.ToggleTheme)
	}

	r.GET("/dashboard/summary", ar.dashboardHandler.Summary)
	r.GET("/export", ar.exportHandler.Snapshot)
}
