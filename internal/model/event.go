package model

import "hrdesk/internal/core"

type EventRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Media       []string `json:"media"`
}

type CalendarEvent struct {
	ID          string                 `json:"id"`
	Date        string                 `json:"date"`
	Title       string                 `json:"title"`
	Type        core.CalendarEventType `json:"type"`
	Description string                 `json:"description,omitempty"`
}
