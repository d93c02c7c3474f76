package dto

import "hrdesk/internal/core"

type CalendarQuery struct {
	Date  string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Month string `form:"month" binding:"omitempty,datetime=2006-01"`
}

type CreateCalendarEventDto struct {
	Date        string                 `json:"date" binding:"required,datetime=2006-01-02"`
	Title       string                 `json:"title" binding:"required"`
	Type        core.CalendarEventType `json:"type" binding:"omitempty,oneof=holiday meeting event"`
	Description string                 `json:"description"`
}
