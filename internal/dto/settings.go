package dto

import "hrdesk/internal/core"

type SettingsDto struct {
	Theme    core.Theme    `json:"theme"`
	Layout   core.Layout   `json:"layout"`
	FontSize core.FontSize `json:"fontSize"`
	Avatar   string        `json:"avatar"`
}

type UpdateSettingsDto struct {
	Theme    *core.Theme    `json:"theme,omitempty" binding:"omitempty,oneof=light dark"`
	Layout   *core.Layout   `json:"layout,omitempty" binding:"omitempty,oneof=compact standard wide"`
	FontSize *core.FontSize `json:"fontSize,omitempty" binding:"omitempty,oneof=small medium large"`
	Avatar   *string        `json:"avatar,omitempty" binding:"omitempty,url"`
}
