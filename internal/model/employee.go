package model

import "hrdesk/internal/core"

type Employee struct {
	ID           int                 `json:"id"`
	Name         string              `json:"name"`
	CNIC         string              `json:"cnic"`
	Contact      string              `json:"contact"`
	Designation  string              `json:"designation"`
	Department   string              `json:"department"`
	StartedDate  string              `json:"startedDate"`
	Status       core.EmployeeStatus `json:"status"`
	Salary       string              `json:"salary"`
	CompanyEmail string              `json:"companyEmail,omitempty"`
}

// EmployeeDocuments 五個可選的文件欄位，存檔名或編碼後內容
type EmployeeDocuments struct {
	PassportPic        *string `json:"passportPic"`
	CNICPdf            *string `json:"cnicPdf"`
	PrevSalarySlip     *string `json:"prevSalarySlip"`
	IntermediateDegree *string `json:"intermediateDegree"`
	BachelorsDegree    *string `json:"bachelorsDegree"`
}

// DocumentsByEmployee 以員工 id 為 key 的文件表
type DocumentsByEmployee map[int]EmployeeDocuments
