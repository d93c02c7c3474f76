package service

import (
	"context"
	"fmt"
	"io"
	"slices"

	"hrdesk/internal/core"
	"hrdesk/internal/dto"
	"hrdesk/internal/export"
	"hrdesk/internal/model"
	cErr "hrdesk/internal/pkg/error"
	"hrdesk/internal/telemetry"

	"go.uber.org/zap"
)

type ExportService struct {
	trace  *telemetry.Trace
	logger *zap.Logger
	ws     *Workspace
}

func NewExportService(trace *telemetry.Trace, logger *zap.Logger, ws *Workspace) *ExportService {
	return &ExportService{trace: trace, logger: logger, ws: ws}
}

// Snapshot 把所有 slot 以指定格式寫出；xlsx 每個 slot 一個工作表
func (s *ExportService) Snapshot(ctx context.Context, w io.Writer, format export.Format) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	snapshot, err := s.ws.Registry.Snapshot(ctx)
	if err != nil {
		return storeError("snapshot", err)
	}
	redactSecrets(snapshot)

	switch format {
	case export.FormatJSON:
		err = export.WriteJSON(w, snapshot)
	case export.FormatYAML:
		err = export.WriteYAML(w, snapshot)
	case export.FormatXLSX:
		sheets := make([]export.Sheet, 0, len(snapshot))
		for _, name := range s.ws.Registry.Names() {
			sheet, serr := export.SheetFromRecords(string(name), snapshot[name])
			if serr != nil {
				return cErr.InternalServer(fmt.Sprintf("build sheet %s: %v", name, serr))
			}
			sheets = append(sheets, sheet)
		}
		err = export.WriteXLSX(w, sheets...)
	default:
		return cErr.ValidateErr(fmt.Sprintf("unsupported export format %q", format))
	}
	if err != nil {
		return cErr.InternalServer(fmt.Sprintf("write %s export: %v", format, err))
	}
	s.logger.Info("store exported", zap.String("format", string(format)), zap.Int("slots", len(snapshot)))
	return nil
}

// redactSecrets 密碼雜湊不得出現在匯出內容，與 admin API 的輸出一致
func redactSecrets(snapshot map[core.SlotName]any) {
	if users, ok := snapshot[core.SlotDashboardUsers].([]model.DashboardUser); ok {
		out := make([]dto.DashboardUserDto, len(users))
		for i, u := range users {
			out[i] = toUserDto(u)
		}
		snapshot[core.SlotDashboardUsers] = out
	}
	if details, ok := snapshot[core.SlotAdminDetails].(model.AdminDetails); ok {
		snapshot[core.SlotAdminDetails] = toAdminDto(details)
	}
}

var attendanceHeaders = []string{"ID", "Employee", "Designation", "Date", "Check In", "Check Out", "Status", "Total Hours"}

// Attendance 出勤報表（xlsx），欄位順序與前端表格一致
func (s *ExportService) Attendance(ctx context.Context, w io.Writer) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	records, err := s.ws.Attendance.List(ctx)
	if err != nil {
		return storeError("list attendance", err)
	}
	sheet := export.Sheet{Name: "Attendance", Headers: slices.Clone(attendanceHeaders)}
	for _, r := range records {
		sheet.Rows = append(sheet.Rows, attendanceRow(r))
	}
	if err := export.WriteXLSX(w, sheet); err != nil {
		return cErr.InternalServer(fmt.Sprintf("write attendance xlsx: %v", err))
	}
	s.logger.Debug("attendance exported", zap.Int("records", len(records)), zap.String("slot", string(core.SlotAttendance)))
	return nil
}

func attendanceRow(r model.AttendanceRecord) []any {
	return []any{r.ID, r.EmployeeName, r.Designation, r.Date, r.CheckIn, r.CheckOut, string(r.Status), r.TotalHours}
}
