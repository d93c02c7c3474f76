package service

import (
	"context"

	"hrdesk/internal/core"
	"hrdesk/internal/dto"
	"hrdesk/internal/telemetry"
)

type SettingsService struct {
	trace *telemetry.Trace
	ws    *Workspace
}

func NewSettingsService(trace *telemetry.Trace, ws *Workspace) *SettingsService {
	return &SettingsService{trace: trace, ws: ws}
}

func (s *SettingsService) Get(ctx context.Context) (*dto.SettingsDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	return s.current(ctx)
}

// Update 每個設定各自一個 slot，只寫有帶的欄位
func (s *SettingsService) Update(ctx context.Context, req *dto.UpdateSettingsDto) (*dto.SettingsDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if req.Theme != nil {
		if err := s.ws.Theme.Set(ctx, *req.Theme); err != nil {
			return nil, storeError("save theme", err)
		}
	}
	if req.Layout != nil {
		if err := s.ws.Layout.Set(ctx, *req.Layout); err != nil {
			return nil, storeError("save layout", err)
		}
	}
	if req.FontSize != nil {
		if err := s.ws.FontSize.Set(ctx, *req.FontSize); err != nil {
			return nil, storeError("save font size", err)
		}
	}
	if req.Avatar != nil {
		if err := s.ws.Avatar.Set(ctx, *req.Avatar); err != nil {
			return nil, storeError("save avatar", err)
		}
	}
	return s.current(ctx)
}

// ToggleTheme light <-> dark
func (s *SettingsService) ToggleTheme(ctx context.Context) (*dto.SettingsDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	_, err := s.ws.Theme.Update(ctx, func(t *core.Theme) error {
		if *t == core.ThemeDark {
			*t = core.ThemeLight
		} else {
			*t = core.ThemeDark
		}
		return nil
	})
	if err != nil {
		return nil, storeError("toggle theme", err)
	}
	return s.current(ctx)
}

func (s *SettingsService) current(ctx context.Context) (*dto.SettingsDto, error) {
	theme, err := s.ws.Theme.Get(ctx)
	if err != nil {
		return nil, storeError("get theme", err)
	}
	layout, err := s.ws.Layout.Get(ctx)
	if err != nil {
		return nil, storeError("get layout", err)
	}
	fontSize, err := s.ws.FontSize.Get(ctx)
	if err != nil {
		return nil, storeError("get font size", err)
	}
	avatar, err := s.ws.Avatar.Get(ctx)
	if err != nil {
		return nil, storeError("get avatar", err)
	}
	return &dto.SettingsDto{Theme: theme, Layout: layout, FontSize: fontSize, Avatar: avatar}, nil
}
