package dto

import (
	"hrdesk/internal/core"
	"hrdesk/internal/model"
)

type CreateApplicationDto struct {
	EmployeeID   string               `json:"employeeId" binding:"required"`
	EmployeeName string               `json:"employeeName" binding:"required"`
	Type         core.ApplicationType `json:"type" binding:"required,oneof=leave short-leave other"`
	Reason       string               `json:"reason" binding:"required"`
	Duration     string               `json:"duration" binding:"required"`
}

type UpdateApplicationStatusDto struct {
	Status core.ApplicationStatus `json:"status" binding:"required,oneof=pending in-progress approved rejected"`
}

type ApplicationQuery struct {
	Search string `form:"search"`
	Status string `form:"status" binding:"omitempty,oneof=pending in-progress approved rejected"`
}

type ApplicationItemDto struct {
	model.LeaveApplication
	StatusLabel string `json:"statusLabel"`
}
