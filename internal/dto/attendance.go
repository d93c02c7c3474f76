package dto

import (
	"hrdesk/internal/core"
	"hrdesk/internal/model"
)

type CreateAttendanceDto struct {
	EmployeeID   *int                  `json:"employeeId"`
	EmployeeName string                `json:"employeeName" binding:"required"`
	Designation  string                `json:"designation"`
	Date         string                `json:"date" binding:"required,datetime=2006-01-02"`
	CheckIn      string                `json:"checkIn"`
	CheckOut     string                `json:"checkOut"`
	Status       core.AttendanceStatus `json:"status" binding:"required,oneof=present absent late half-day"`
	TotalHours   string                `json:"totalHours"`
}

type AttendanceQuery struct {
	Search string                `form:"search"`
	Status core.AttendanceStatus `form:"status" binding:"omitempty,oneof=present absent late half-day"`
	Date   string                `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

type AttendanceStats struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	HalfDay int `json:"halfDay"`
}

type AttendanceListDto struct {
	Items []model.AttendanceRecord `json:"items"`
	Stats AttendanceStats          `json:"stats"`
}
