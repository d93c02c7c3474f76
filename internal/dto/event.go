package dto

import "hrdesk/internal/pkg/request"

// EventDto 建立與更新共用；更新時整筆覆蓋
type EventDto struct {
	Name        string   `json:"name" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	Description string   `json:"description"`
	Media       []string `json:"media"`
}

func (EventDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Name.required": "event name is required",
		"Date.required": "event date is required",
	}
}

type EventQuery struct {
	Search string `form:"search"`
}
