package model

import "hrdesk/internal/core"

type AttendanceRecord struct {
	ID           int                   `json:"id"`
	EmployeeID   *int                  `json:"employeeId,omitempty"`
	EmployeeName string                `json:"employeeName"`
	Designation  string                `json:"designation"`
	Date         string                `json:"date"`
	CheckIn      string                `json:"checkIn"`
	CheckOut     string                `json:"checkOut"`
	Status       core.AttendanceStatus `json:"status"`
	TotalHours   string                `json:"totalHours"`
}
