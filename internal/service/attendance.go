package service

import (
	"context"

	"hrdesk/config"
	"hrdesk/internal/core"
	"hrdesk/internal/dto"
	"hrdesk/internal/model"
	cErr "hrdesk/internal/pkg/error"
	"hrdesk/internal/store"
	"hrdesk/internal/telemetry"

	"go.uber.org/zap"
)

type AttendanceService struct {
	trace  *telemetry.Trace
	config *config.Configuration
	logger *zap.Logger
	ws     *Workspace
}

func NewAttendanceService(trace *telemetry.Trace, config *config.Configuration, logger *zap.Logger, ws *Workspace) *AttendanceService {
	return &AttendanceService{trace: trace, config: config, logger: logger, ws: ws}
}

// List 依員工姓名搜尋並可用狀態、日期篩選；統計以全部紀錄計算
func (s *AttendanceService) List(ctx context.Context, query dto.AttendanceQuery) (*dto.AttendanceListDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	all, err := s.ws.Attendance.List(ctx)
	if err != nil {
		return nil, storeError("list attendance", err)
	}
	items := store.Where(all, func(r model.AttendanceRecord) bool {
		if query.Status != "" && r.Status != query.Status {
			return false
		}
		if query.Date != "" && r.Date != query.Date {
			return false
		}
		return store.MatchAny(query.Search, r.EmployeeName)
	})
	s.trace.ApplyTraceAttributes(span, core.TraceListMeta{
		Resource:    string(core.SlotAttendance),
		Search:      query.Search,
		Filter:      map[string]any{"status": string(query.Status), "date": query.Date},
		ResultCount: len(items),
		TotalCount:  len(all),
	})
	return &dto.AttendanceListDto{Items: items, Stats: attendanceStats(all)}, nil
}

func (s *AttendanceService) Stats(ctx context.Context) (dto.AttendanceStats, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	all, err := s.ws.Attendance.List(ctx)
	if err != nil {
		return dto.AttendanceStats{}, storeError("attendance stats", err)
	}
	return attendanceStats(all), nil
}

// Create 有帶 employeeId 時補上職稱；開啟參照檢查時 employeeId 必須存在
func (s *AttendanceService) Create(ctx context.Context, req *dto.CreateAttendanceDto) (*model.AttendanceRecord, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	record := model.AttendanceRecord{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Designation:  req.Designation,
		Date:         req.Date,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		Status:       req.Status,
		TotalHours:   req.TotalHours,
	}
	if req.EmployeeID != nil {
		emp, found, err := s.ws.Employees.Get(ctx, *req.EmployeeID)
		if err != nil {
			return nil, storeError("get employee", err)
		}
		if !found && s.config.Store.EnforceReferences {
			return nil, cErr.InvalidReference("employee not found")
		}
		if found && record.Designation == "" {
			record.Designation = emp.Designation
		}
	}

	created, err := s.ws.Attendance.Create(ctx, record)
	if err != nil {
		return nil, storeError("create attendance", err)
	}
	return &created, nil
}

// attendanceStats 遲到也算出勤
func attendanceStats(all []model.AttendanceRecord) dto.AttendanceStats {
	is := func(status core.AttendanceStatus) func(model.AttendanceRecord) bool {
		return func(r model.AttendanceRecord) bool { return r.Status == status }
	}
	return dto.AttendanceStats{
		Present: store.CountWhere(all, func(r model.AttendanceRecord) bool {
			return r.Status == core.AttendancePresent || r.Status == core.AttendanceLate
		}),
		Absent:  store.CountWhere(all, is(core.AttendanceAbsent)),
		Late:    store.CountWhere(all, is(core.AttendanceLate)),
		HalfDay: store.CountWhere(all, is(core.AttendanceHalfDay)),
	}
}
