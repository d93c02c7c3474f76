package model

import "hrdesk/internal/core"

type ComplaintReply struct {
	ID        string           `json:"id"`
	Sender    core.ReplySender `json:"sender"`
	Text      string           `json:"text"`
	Timestamp string           `json:"timestamp"`
}

type Complaint struct {
	ID          string               `json:"id"`
	Complainant string               `json:"complainant"`
	EmployeeID  string               `json:"employeeId"`
	Subject     string               `json:"subject"`
	Description string               `json:"description"`
	Date        string               `json:"date"`
	Status      core.ComplaintStatus `json:"status"`
	Replies     []ComplaintReply     `json:"replies"`
}
