package model

import "hrdesk/internal/core"

type LeaveApplication struct {
	ID           string                 `json:"id"`
	EmployeeID   string                 `json:"employeeId"`
	EmployeeName string                 `json:"employeeName"`
	Type         core.ApplicationType   `json:"type"`
	Reason       string                 `json:"reason"`
	Duration     string                 `json:"duration"`
	AppliedDate  string                 `json:"appliedDate"`
	Status       core.ApplicationStatus `json:"status"`
}
