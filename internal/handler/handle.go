package handler

import (
	"github.com/google/wire"
)

// ProviderSet Provider对象集合
var ProviderSet = wire.NewSet(
	NewHealthHandler,
	NewAuthHandler,
	NewEmployeeHandler,
	NewAttendanceHandler,
	NewDepartmentHandler,
	NewFacilityHandler,
	NewCalendarHandler,
	NewEventHandler,
	NewComplaintHandler,
	NewApplicationHandler,
	NewAdminHandler,
	NewSettingsHandler,
	NewDashboardHandler,
	NewExportHandler,
	NewWebSocketHandler,
)
