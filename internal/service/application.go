package service

import (
	"context"
	"strings"

	"hrdesk/config"
	"hrdesk/internal/core"
	"hrdesk/internal/dto"
	"hrdesk/internal/i18n"
	"hrdesk/internal/model"
	cErr "hrdesk/internal/pkg/error"
	"hrdesk/internal/store"
	"hrdesk/internal/telemetry"
	"hrdesk/utils/validate"

	"go.uber.org/zap"
)

type ApplicationService struct {
	trace      *telemetry.Trace
	config     *config.Configuration
	logger     *zap.Logger
	translator *i18n.Translator
	ws         *Workspace
}

func NewApplicationService(
	trace *telemetry.Trace,
	config *config.Configuration,
	logger *zap.Logger,
	translator *i18n.Translator,
	ws *Workspace,
) *ApplicationService {
	return &ApplicationService{trace: trace, config: config, logger: logger, translator: translator, ws: ws}
}

func (s *ApplicationService) List(ctx context.Context, query dto.ApplicationQuery) ([]dto.ApplicationItemDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	items, err := s.ws.Applications.Filter(ctx, func(a model.LeaveApplication) bool {
		if query.Status != "" && string(a.Status) != query.Status {
			return false
		}
		return store.MatchAny(query.Search, a.EmployeeName, a.EmployeeID, a.Reason)
	})
	if err != nil {
		return nil, storeError("list applications", err)
	}
	s.trace.ApplyTraceAttributes(span, core.TraceListMeta{
		Resource:    string(core.SlotApplications),
		Search:      query.Search,
		Filter:      map[string]any{"status": query.Status},
		ResultCount: len(items),
	})
	return s.withLabels(ctx, items), nil
}

// History 某位員工的所有申請，依 employeeId 比對
func (s *ApplicationService) History(ctx context.Context, employeeID string) ([]dto.ApplicationItemDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employeeID = strings.TrimSpace(employeeID)
	items, err := s.ws.Applications.Filter(ctx, func(a model.LeaveApplication) bool {
		return a.EmployeeID == employeeID
	})
	if err != nil {
		return nil, storeError("list applications", err)
	}
	return s.withLabels(ctx, items), nil
}

func (s *ApplicationService) Create(ctx context.Context, req *dto.CreateApplicationDto) (*model.LeaveApplication, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	err := validate.RequireNonBlank(
		validate.Field{Name: "employeeId", Value: req.EmployeeID},
		validate.Field{Name: "employeeName", Value: req.EmployeeName},
		validate.Field{Name: "reason", Value: req.Reason},
		validate.Field{Name: "duration", Value: req.Duration},
	)
	if err != nil {
		return nil, err
	}
	if s.config.Store.EnforceReferences {
		if _, found, err := s.ws.LookupEmployee(ctx, req.EmployeeID); err != nil {
			return nil, storeError("lookup employee", err)
		} else if !found {
			return nil, cErr.InvalidReference("employee not found")
		}
	}

	created, err := s.ws.Applications.Create(ctx, model.LeaveApplication{
		EmployeeID:   strings.TrimSpace(req.EmployeeID),
		EmployeeName: strings.TrimSpace(req.EmployeeName),
		Type:         req.Type,
		Reason:       req.Reason,
		Duration:     req.Duration,
		AppliedDate:  today(),
		Status:       core.ApplicationPending,
	})
	if err != nil {
		return nil, storeError("create application", err)
	}
	return &created, nil
}

func (s *ApplicationService) ChangeStatus(ctx context.Context, id string, status core.ApplicationStatus) (*model.LeaveApplication, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	updated, found, err := s.ws.Applications.Update(ctx, id, func(a *model.LeaveApplication) error {
		a.Status = status
		return nil
	})
	if err != nil {
		return nil, storeError("update application status", err)
	}
	if !found {
		return nil, cErr.NotFound("application not found")
	}
	s.logger.Info("application status changed", zap.String("id", id), zap.String("status", string(status)))
	return &updated, nil
}

func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	found, err := s.ws.Applications.Delete(ctx, id)
	if err != nil {
		return storeError("delete application", err)
	}
	if !found {
		return cErr.NotFound("application not found")
	}
	return nil
}

func (s *ApplicationService) withLabels(ctx context.Context, items []model.LeaveApplication) []dto.ApplicationItemDto {
	out := make([]dto.ApplicationItemDto, 0, len(items))
	for _, a := range items {
		out = append(out, dto.ApplicationItemDto{
			LeaveApplication: a,
			StatusLabel:      s.translator.Status(ctx, "application", string(a.Status)),
		})
	}
	return out
}
