package dto

import "hrdesk/internal/model"

type DepartmentQuery struct {
	Search string `form:"search"`
}

type DepartmentDto struct {
	model.Department
	MemberCount int `json:"memberCount"`
}

type DepartmentDetailDto struct {
	model.Department
	Members []model.Employee `json:"members"`
}
