package service

import (
	"context"

	"hrdesk/config"
	"hrdesk/internal/core"
	"hrdesk/internal/dto"
	"hrdesk/internal/model"
	"hrdesk/internal/store"
	"hrdesk/internal/telemetry"
)

type DashboardService struct {
	trace  *telemetry.Trace
	config *config.Configuration
	ws     *Workspace
}

func NewDashboardService(trace *telemetry.Trace, config *config.Configuration, ws *Workspace) *DashboardService {
	return &DashboardService{trace: trace, config: config, ws: ws}
}

// ReferenceDate query > DASHBOARD__REFERENCE_DATE > 今天
func (s *DashboardService) ReferenceDate(date string) string {
	if date != "" {
		return date
	}
	if s.config.Dashboard.ReferenceDate != "" {
		return s.config.Dashboard.ReferenceDate
	}
	return today()
}

// Summary 每次請求重新計算，不快取
func (s *DashboardService) Summary(ctx context.Context, query dto.DashboardQuery) (*dto.DashboardSummaryDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	date := s.ReferenceDate(query.Date)

	employees, err := s.ws.Employees.List(ctx)
	if err != nil {
		return nil, storeError("list employees", err)
	}
	attendance, err := s.ws.Attendance.Filter(ctx, func(r model.AttendanceRecord) bool { return r.Date == date })
	if err != nil {
		return nil, storeError("list attendance", err)
	}
	pending, err := s.ws.Applications.Count(ctx, func(a model.LeaveApplication) bool {
		return a.Status == core.ApplicationPending
	})
	if err != nil {
		return nil, storeError("count applications", err)
	}
	open, err := s.ws.Complaints.Count(ctx, func(c model.Complaint) bool {
		return c.Status != core.ComplaintCompleted
	})
	if err != nil {
		return nil, storeError("count complaints", err)
	}
	upcoming, err := s.ws.Calendar.Count(ctx, func(e model.CalendarEvent) bool { return e.Date >= date })
	if err != nil {
		return nil, storeError("count calendar events", err)
	}

	departments := s.ws.Departments()
	headcount := make([]dto.DepartmentHeadcountDto, 0, len(departments))
	for _, d := range departments {
		headcount = append(headcount, dto.DepartmentHeadcountDto{Name: d.Name, Members: len(membersOf(employees, d.Name))})
	}

	return &dto.DashboardSummaryDto{
		Employees:           employeeStats(employees),
		Today:               todayAttendance(date, attendance),
		Departments:         headcount,
		PendingApplications: pending,
		OpenComplaints:      open,
		UpcomingEvents:      upcoming,
	}, nil
}

// todayAttendance active = 出勤或遲到，leave = 缺勤，shortLeave = 半天
func todayAttendance(date string, records []model.AttendanceRecord) dto.TodayAttendanceDto {
	return dto.TodayAttendanceDto{
		Date: date,
		Active: store.CountWhere(records, func(r model.AttendanceRecord) bool {
			return r.Status == core.AttendancePresent || r.Status == core.AttendanceLate
		}),
		Leave:      store.CountWhere(records, func(r model.AttendanceRecord) bool { return r.Status == core.AttendanceAbsent }),
		ShortLeave: store.CountWhere(records, func(r model.AttendanceRecord) bool { return r.Status == core.AttendanceHalfDay }),
	}
}
