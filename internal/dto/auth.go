package dto

import "hrdesk/internal/pkg/request"

// LoginDto 任何非空 email 都可登入
type LoginDto struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
}

func (LoginDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Email.required": "email is required",
	}
}

type SessionDto struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	UserEmail       string `json:"userEmail"`
	Token           string `json:"token,omitempty"`
	ExpiresAt       int64  `json:"expiresAt,omitempty"`
}
