package service

import (
	"context"
	"strings"

	"hrdesk/internal/core"
	"hrdesk/internal/dto"
	"hrdesk/internal/model"
	cErr "hrdesk/internal/pkg/error"
	"hrdesk/internal/telemetry"
)

type CalendarService struct {
	trace *telemetry.Trace
	ws    *Workspace
}

func NewCalendarService(trace *telemetry.Trace, ws *Workspace) *CalendarService {
	return &CalendarService{trace: trace, ws: ws}
}

// List date 優先於 month；都沒給時回傳全部
func (s *CalendarService) List(ctx context.Context, query dto.CalendarQuery) ([]model.CalendarEvent, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	items, err := s.ws.Calendar.Filter(ctx, func(e model.CalendarEvent) bool {
		switch {
		case query.Date != "":
			return e.Date == query.Date
		case query.Month != "":
			return strings.HasPrefix(e.Date, query.Month+"-")
		default:
			return true
		}
	})
	if err != nil {
		return nil, storeError("list calendar events", err)
	}
	s.trace.ApplyTraceAttributes(span, core.TraceListMeta{
		Resource:    string(core.SlotCalendarEvents),
		Filter:      map[string]any{"date": query.Date, "month": query.Month},
		ResultCount: len(items),
	})
	return items, nil
}

func (s *CalendarService) Create(ctx context.Context, req *dto.CreateCalendarEventDto) (*model.CalendarEvent, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, cErr.ValidateErr("title is required")
	}
	eventType := req.Type
	if eventType == "" {
		eventType = core.CalendarEvent
	}
	created, err := s.ws.Calendar.Create(ctx, model.CalendarEvent{
		Date:        req.Date,
		Title:       title,
		Type:        eventType,
		Description: req.Description,
	})
	if err != nil {
		return nil, storeError("create calendar event", err)
	}
	return &created, nil
}

func (s *CalendarService) Delete(ctx context.Context, id string) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	found, err := s.ws.Calendar.Delete(ctx, id)
	if err != nil {
		return storeError("delete calendar event", err)
	}
	if !found {
		return cErr.NotFound("calendar event not found")
	}
	return nil
}
