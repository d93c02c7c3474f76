package dto

import (
	"hrdesk/internal/core"
	"hrdesk/internal/model"
	"hrdesk/internal/pkg/request"
)

type EmployeeDocumentsDto struct {
	PassportPic        *string `json:"passportPic"`
	CNICPdf            *string `json:"cnicPdf"`
	PrevSalarySlip     *string `json:"prevSalarySlip"`
	IntermediateDegree *string `json:"intermediateDegree"`
	BachelorsDegree    *string `json:"bachelorsDegree"`
}

func (d EmployeeDocumentsDto) Model() model.EmployeeDocuments {
	return model.EmployeeDocuments{
		PassportPic:        d.PassportPic,
		CNICPdf:            d.CNICPdf,
		PrevSalarySlip:     d.PrevSalarySlip,
		IntermediateDegree: d.IntermediateDegree,
		BachelorsDegree:    d.BachelorsDegree,
	}
}

type CreateEmployeeDto struct {
	Name         string                `json:"name" binding:"required"`
	CNIC         string                `json:"cnic"`
	Contact      string                `json:"contact"`
	Designation  string                `json:"designation" binding:"required"`
	Department   string                `json:"department" binding:"required"`
	StartedDate  string                `json:"startedDate" binding:"omitempty,datetime=2006-01-02"`
	Status       core.EmployeeStatus   `json:"status" binding:"omitempty,oneof=active inactive"`
	Salary       string                `json:"salary"`
	CompanyEmail string                `json:"companyEmail" binding:"omitempty,email"`
	Documents    *EmployeeDocumentsDto `json:"documents"`
}

func (CreateEmployeeDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Name.required":        "name is required",
		"Designation.required": "designation is required",
		"Department.required":  "department is required",
		"StartedDate.datetime": "startedDate must be YYYY-MM-DD",
		"Status.oneof":         "status must be active or inactive",
		"CompanyEmail.email":   "companyEmail is not a valid email",
	}
}

// UpdateEmployeeDto 只更新有帶的欄位
type UpdateEmployeeDto struct {
	Name         *string               `json:"name,omitempty" binding:"omitempty,min=1"`
	CNIC         *string               `json:"cnic,omitempty"`
	Contact      *string               `json:"contact,omitempty"`
	Designation  *string               `json:"designation,omitempty"`
	Department   *string               `json:"department,omitempty"`
	StartedDate  *string               `json:"startedDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Status       *core.EmployeeStatus  `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
	Salary       *string               `json:"salary,omitempty"`
	CompanyEmail *string               `json:"companyEmail,omitempty" binding:"omitempty,email"`
	Documents    *EmployeeDocumentsDto `json:"documents,omitempty"`
}

type EmployeeListQuery struct {
	Search string `form:"search"`
}

type EmployeeStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

type EmployeeListDto struct {
	Items []model.Employee `json:"items"`
	Stats EmployeeStats    `json:"stats"`
}

type EmployeeDetailDto struct {
	model.Employee
	Documents model.EmployeeDocuments `json:"documents"`
}
