package service

import (
	"context"

	"hrdesk/internal/core"
	"hrdesk/internal/dto"
	"hrdesk/internal/model"
	cErr "hrdesk/internal/pkg/error"
	"hrdesk/internal/store"
	"hrdesk/internal/telemetry"
	"hrdesk/utils/validate"
)

type EventService struct {
	trace *telemetry.Trace
	ws    *Workspace
}

func NewEventService(trace *telemetry.Trace, ws *Workspace) *EventService {
	return &EventService{trace: trace, ws: ws}
}

func (s *EventService) List(ctx context.Context, query dto.EventQuery) ([]model.EventRecord, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	items, err := s.ws.Events.Filter(ctx, func(e model.EventRecord) bool {
		return store.MatchAny(query.Search, e.Name, e.Description)
	})
	if err != nil {
		return nil, storeError("list events", err)
	}
	s.trace.ApplyTraceAttributes(span, core.TraceListMeta{
		Resource: string(core.SlotEvents), Search: query.Search, ResultCount: len(items),
	})
	return items, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*model.EventRecord, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	event, found, err := s.ws.Events.Get(ctx, id)
	if err != nil {
		return nil, storeError("get event", err)
	}
	if !found {
		return nil, cErr.NotFound("event not found")
	}
	return &event, nil
}

func (s *EventService) Create(ctx context.Context, req *dto.EventDto) (*model.EventRecord, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := validate.RequireNonBlank(validate.Field{Name: "name", Value: req.Name}, validate.Field{Name: "date", Value: req.Date}); err != nil {
		return nil, err
	}
	created, err := s.ws.Events.Create(ctx, model.EventRecord{
		Name:        req.Name,
		Date:        req.Date,
		Description: req.Description,
		Media:       mediaOrEmpty(req.Media),
	})
	if err != nil {
		return nil, storeError("create event", err)
	}
	return &created, nil
}

// Update 名稱、日期、描述、媒體整筆覆蓋
func (s *EventService) Update(ctx context.Context, id string, req *dto.EventDto) (*model.EventRecord, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := validate.RequireNonBlank(validate.Field{Name: "name", Value: req.Name}, validate.Field{Name: "date", Value: req.Date}); err != nil {
		return nil, err
	}
	updated, found, err := s.ws.Events.Update(ctx, id, func(e *model.EventRecord) error {
		e.Name = req.Name
		e.Date = req.Date
		e.Description = req.Description
		e.Media = mediaOrEmpty(req.Media)
		return nil
	})
	if err != nil {
		return nil, storeError("update event", err)
	}
	if !found {
		return nil, cErr.NotFound("event not found")
	}
	return &updated, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	found, err := s.ws.Events.Delete(ctx, id)
	if err != nil {
		return storeError("delete event", err)
	}
	if !found {
		return cErr.NotFound("event not found")
	}
	return nil
}

func mediaOrEmpty(media []string) []string {
	if media == nil {
		return []string{}
	}
	return media
}
