package service

import (
	"context"
	"strings"

	"hrdesk/internal/core"
	"hrdesk/internal/dto"
	"hrdesk/internal/model"
	cErr "hrdesk/internal/pkg/error"
	"hrdesk/internal/store"
	"hrdesk/internal/telemetry"
)

type DepartmentService struct {
	trace *telemetry.Trace
	ws    *Workspace
}

func NewDepartmentService(trace *telemetry.Trace, ws *Workspace) *DepartmentService {
	return &DepartmentService{trace: trace, ws: ws}
}

// List 人數以目前員工資料的 department 欄位計算
func (s *DepartmentService) List(ctx context.Context, query dto.DepartmentQuery) ([]dto.DepartmentDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employees, err := s.ws.Employees.List(ctx)
	if err != nil {
		return nil, storeError("list employees", err)
	}
	departments := store.Where(s.ws.Departments(), func(d model.Department) bool {
		return store.MatchAny(query.Search, d.Name)
	})
	out := make([]dto.DepartmentDto, 0, len(departments))
	for _, d := range departments {
		out = append(out, dto.DepartmentDto{Department: d, MemberCount: len(membersOf(employees, d.Name))})
	}
	s.trace.ApplyTraceAttributes(span, core.TraceListMeta{
		Resource: "departments", Search: query.Search, ResultCount: len(out), TotalCount: len(s.ws.departments),
	})
	return out, nil
}

func (s *DepartmentService) Get(ctx context.Context, id int) (*dto.DepartmentDetailDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	for _, d := range s.ws.Departments() {
		if d.ID != id {
			continue
		}
		employees, err := s.ws.Employees.List(ctx)
		if err != nil {
			return nil, storeError("list employees", err)
		}
		return &dto.DepartmentDetailDto{Department: d, Members: membersOf(employees, d.Name)}, nil
	}
	return nil, cErr.NotFound("department not found")
}

func membersOf(employees []model.Employee, department string) []model.Employee {
	return store.Where(employees, func(e model.Employee) bool {
		return strings.EqualFold(e.Department, department)
	})
}
