package dto

import (
	"hrdesk/internal/core"
	"hrdesk/internal/model"
	"hrdesk/internal/pkg/request"
)

type CreateComplaintDto struct {
	Complainant string `json:"complainant" binding:"required"`
	EmployeeID  string `json:"employeeId" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (CreateComplaintDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Complainant.required": "complainant is required",
		"EmployeeID.required":  "employeeId is required",
		"Subject.required":     "subject is required",
		"Description.required": "description is required",
	}
}

type UpdateComplaintStatusDto struct {
	Status core.ComplaintStatus `json:"status" binding:"required,oneof=active in-progress completed"`
}

type ComplaintReplyDto struct {
	Text string `json:"text" binding:"required"`
}

type ComplaintQuery struct {
	Search string `form:"search"`
	Status string `form:"status" binding:"omitempty,oneof=active in-progress completed"`
	Sort   string `form:"sort" binding:"omitempty,oneof=newest"`
}

type ComplaintItemDto struct {
	model.Complaint
	StatusLabel string `json:"statusLabel"`
}

type ComplaintDetailDto struct {
	model.Complaint
	StatusLabel string          `json:"statusLabel"`
	Employee    *model.Employee `json:"employee"`
}
