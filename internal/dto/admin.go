package dto

import (
	"hrdesk/internal/core"
	"hrdesk/internal/pkg/request"
)

type CreateDashboardUserDto struct {
	Name            string    `json:"name" binding:"required"`
	UserID          string    `json:"userId" binding:"required,excludesall=@"`
	Role            core.Role `json:"role" binding:"omitempty,oneof=Admin Editor Staff"`
	Password        string    `json:"password" binding:"required,min=6"`
	ConfirmPassword string    `json:"confirmPassword" binding:"required"`
}

func (CreateDashboardUserDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Name.required":            "name is required",
		"UserID.required":          "userId is required",
		"UserID.excludesall":       "userId must not contain '@'",
		"Role.oneof":               "role must be Admin, Editor or Staff",
		"Password.required":        "password is required",
		"Password.min":             "password must be at least 6 characters",
		"ConfirmPassword.required": "confirmPassword is required",
	}
}

type UpdateDashboardUserDto struct {
	Name *string    `json:"name,omitempty" binding:"omitempty,min=1"`
	Role *core.Role `json:"role,omitempty" binding:"omitempty,oneof=Admin Editor Staff"`
}

type UserSearchQuery struct {
	Search string `form:"search"`
}

type DashboardUserDto struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Role  core.Role `json:"role"`
	Email string    `json:"email"`
}

type AdminDetailsDto struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	HasPassword bool   `json:"hasPassword"`
}

// UpdateAdminDetailsDto NewPassword 留空代表不改密碼
type UpdateAdminDetailsDto struct {
	Name            *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Email           *string `json:"email,omitempty" binding:"omitempty,email"`
	CurrentPassword string  `json:"currentPassword"`
	NewPassword     string  `json:"newPassword" binding:"omitempty,min=6"`
	ConfirmPassword string  `json:"confirmPassword"`
}
