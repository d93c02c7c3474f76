package router

import (
	"hrdesk/internal/handler"

	"github.com/gin-gonic/gin"
)

// PeopleRouter 員工、出勤、部門、申訴與假單
type PeopleRouter struct {
	employeeHandler    *handler.EmployeeHandler
	attendanceHandler  *handler.AttendanceHandler
	departmentHandler  *handler.DepartmentHandler
	complaintHandler   *handler.ComplaintHandler
	applicationHandler *handler.ApplicationHandler
}

func NewPeopleRouter(
	employeeHandler *handler.EmployeeHandler,
	attendanceHandler *handler.AttendanceHandler,
	departmentHandler *handler.DepartmentHandler,
	complaintHandler *handler.ComplaintHandler,
	applicationHandler *handler.ApplicationHandler,
) *PeopleRouter {
	return &PeopleRouter{
		employeeHandler:    employeeHandler,
		attendanceHandler:  attendanceHandler,
		departmentHandler:  departmentHandler,
		complaintHandler:   complaintHandler,
		applicationHandler: applicationHandler,
	}
}

func (pr *PeopleRouter) RegisterRoutes(r *gin.RouterGroup) {
	employees := r.Group("/employees")
	{
		employees.GET("", pr.employeeHandler.List)
		employees.POST("", pr.employeeHandler.Create)
		employees.GET("/:id", pr.employeeHandler.Get)
		employees.PUT("/:id", pr.employeeHandler.Update)
		employees.DELETE("/:id", pr.employeeHandler.Delete)
		employees.GET("/:id/documents", pr.employeeHandler.Documents)
	}

	attendance := r.Group("/attendance")
	{
		attendance.GET("", pr.attendanceHandler.List)
		attendance.POST("", pr.attendanceHandler.Create)
		attendance.GET("/stats", pr.attendanceHandler.Stats)
		attendance.GET("/export", pr.attendanceHandler.Export)
	}

	departments := r.Group("/departments")
	{
		departments.GET("", pr.departmentHandler.List)
		departments.GET("/:id", pr.departmentHandler.Get)
	}

	complaints := r.Group("/complaints")
	{
		complaints.GET("", pr.complaintHandler.List)
		complaints.POST("", pr.complaintHandler.Create)
		complaints.GET("/:id", pr.complaintHandler.Get)
		complaints.DELETE("/:id", pr.complaintHandler.Delete)
		complaints.PATCH("/:id/status", pr.complaintHandler.ChangeStatus)
		complaints.POST("/:id/replies", pr.complaintHandler.Reply)
	}

	applications := r.Group("/applications")
	{
		applications.GET("", pr.applicationHandler.List)
		applications.POST("", pr.applicationHandler.Create)
		applications.GET("/history/:employeeId", pr.applicationHandler.History)
		applications.DELETE("/:id", pr.applicationHandler.Delete)
		applications.PATCH("/:id/status", pr.applicationHandler.ChangeStatus)
	}
}
