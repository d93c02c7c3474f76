package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"hrdesk/internal/core"
	"hrdesk/internal/dto"
	"hrdesk/internal/export"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestAttendanceStatsAndFilters(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAttendanceService(env.trace, env.conf, zap.NewNop(), env.ws)
	ctx := context.Background()

	list, err := svc.List(ctx, dto.AttendanceQuery{Status: core.AttendancePresent})
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Items) != 3 {
		t.Fatalf("present records = %d", len(list.Items))
	}
	// late 也算 present
	if list.Stats != (dto.AttendanceStats{Present: 4, Absent: 1, Late: 1, HalfDay: 1}) {
		t.Fatalf("stats = %+v", list.Stats)
	}

	byName, _ := svc.List(ctx, dto.AttendanceQuery{Search: "ali", Date: "2026-01-05"})
	if len(byName.Items) != 1 || byName.Items[0].ID != 6 {
		t.Fatalf("search+date = %+v", byName.Items)
	}

	id := 4
	created, err := svc.Create(ctx, &dto.CreateAttendanceDto{
		EmployeeID: &id, EmployeeName: "Ayesha Malik", Date: "2026-01-07", Status: core.AttendanceLate,
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != 7 || created.Designation != "Accountant" {
		t.Fatalf("unexpected record: %+v", created)
	}
	all, _ := env.ws.Attendance.List(ctx)
	if all[len(all)-1].ID != 7 {
		t.Fatal("attendance records are appended")
	}

	env.conf.Store.EnforceReferences = true
	missing := 99
	_, err = svc.Create(ctx, &dto.CreateAttendanceDto{
		EmployeeID: &missing, EmployeeName: "Nobody", Date: "2026-01-07", Status: core.AttendanceAbsent,
	})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestCalendarFilterAndDefaults(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCalendarService(env.trace, env.ws)
	ctx := context.Background()

	jan, _ := svc.List(ctx, dto.CalendarQuery{Month: "2026-01"})
	if len(jan) != 3 {
		t.Fatalf("january events = %d", len(jan))
	}
	created, err := svc.Create(ctx, &dto.CreateCalendarEventDto{Date: "2026-02-14", Title: "Team lunch"})
	if err != nil {
		t.Fatal(err)
	}
	if created.Type != core.CalendarEvent || created.ID == "" {
		t.Fatalf("unexpected event: %+v", created)
	}
	day, _ := svc.List(ctx, dto.CalendarQuery{Date: "2026-02-14"})
	if len(day) != 1 {
		t.Fatalf("events on day = %d", len(day))
	}
	_, err = svc.Create(ctx, &dto.CreateCalendarEventDto{Date: "2026-02-14", Title: "  "})
	assertStatus(t, err, http.StatusBadRequest)

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	assertStatus(t, svc.Delete(ctx, created.ID), http.StatusNotFound)
}

func TestEventUpdateReplacesFields(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEventService(env.trace, env.ws)
	ctx := context.Background()

	updated, err := svc.Update(ctx, "e-3000", &dto.EventDto{Name: "Cricket Final", Date: "2025-11-09"})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Description != "" || len(updated.Media) != 0 || updated.Name != "Cricket Final" {
		t.Fatalf("update should replace all fields: %+v", updated)
	}
	created, err := svc.Create(ctx, &dto.EventDto{Name: "Hackathon", Date: "2026-03-01", Media: []string{"a.png"}})
	if err != nil {
		t.Fatal(err)
	}
	list, _ := svc.List(ctx, dto.EventQuery{})
	if list[0].ID != created.ID {
		t.Fatal("new event should be first")
	}
	_, err = svc.Get(ctx, "nope")
	assertStatus(t, err, http.StatusNotFound)
}

func TestApplicationLifecycle(t *testing.T) {
	env := newTestEnv(t)
	svc := NewApplicationService(env.trace, env.conf, zap.NewNop(), env.translator, env.ws)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateApplicationDto{
		EmployeeID: "1", EmployeeName: "Ali Raza", Type: core.ApplicationLeave, Reason: "Travel", Duration: "2 days",
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.Status != core.ApplicationPending {
		t.Fatalf("status = %q", created.Status)
	}
	history, _ := svc.History(ctx, "1")
	if len(history) != 2 || history[0].ID != created.ID || history[0].StatusLabel != "Pending" {
		t.Fatalf("history = %+v", history)
	}

	approved, err := svc.ChangeStatus(ctx, created.ID, core.ApplicationApproved)
	if err != nil || approved.Status != core.ApplicationApproved {
		t.Fatalf("ChangeStatus: %+v %v", approved, err)
	}
	pending, _ := svc.List(ctx, dto.ApplicationQuery{Status: "pending"})
	if len(pending) != 1 {
		t.Fatalf("pending = %d", len(pending))
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	_, err = svc.ChangeStatus(ctx, created.ID, core.ApplicationRejected)
	assertStatus(t, err, http.StatusNotFound)
}

func TestSettingsToggleAndUpdate(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSettingsService(env.trace, env.ws)
	ctx := context.Background()

	current, _ := svc.Get(ctx)
	if current.Theme != core.ThemeDark || current.Avatar != core.DefaultAvatarURL {
		t.Fatalf("defaults = %+v", current)
	}
	toggled, _ := svc.ToggleTheme(ctx)
	if toggled.Theme != core.ThemeLight {
		t.Fatalf("theme = %q", toggled.Theme)
	}
	raw, err := env.backend.Get(ctx, core.SlotTheme)
	if err != nil || string(raw) != `"light"` {
		t.Fatalf("theme slot = %s %v", raw, err)
	}

	large := core.FontLarge
	updated, _ := svc.Update(ctx, &dto.UpdateSettingsDto{FontSize: &large})
	if updated.FontSize != core.FontLarge || updated.Theme != core.ThemeLight {
		t.Fatalf("update = %+v", updated)
	}
}

func TestExportSnapshot(t *testing.T) {
	env := newTestEnv(t)
	svc := NewExportService(env.trace, zap.NewNop(), env.ws)
	ctx := context.Background()

	var buf bytes.Buffer
	if err := svc.Snapshot(ctx, &buf, export.FormatJSON); err != nil {
		t.Fatal(err)
	}
	var snapshot map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &snapshot); err != nil {
		t.Fatal(err)
	}
	if len(snapshot) != len(env.ws.Registry.Names()) {
		t.Fatalf("snapshot has %d slots", len(snapshot))
	}

	buf.Reset()
	if err := svc.Attendance(ctx, &buf); err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, _ := f.GetRows("Attendance")
	if len(rows) != 7 || rows[0][1] != "Employee" || rows[1][1] != "Ali Raza" {
		t.Fatalf("rows = %v", rows)
	}
}

func TestExportSnapshotOmitsPasswordHashes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := NewAdminService(env.trace, env.conf, zap.NewNop(), env.ws)
	if _, err := admin.CreateUser(ctx, &dto.CreateDashboardUserDto{
		Name: "Sana Iqbal", UserID: "sana", Password: "secret99", ConfirmPassword: "secret99",
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := admin.UpdateDetails(ctx, &dto.UpdateAdminDetailsDto{
		NewPassword: "rootpass", ConfirmPassword: "rootpass",
	}); err != nil {
		t.Fatal(err)
	}

	svc := NewExportService(env.trace, zap.NewNop(), env.ws)
	for _, format := range []export.Format{export.FormatJSON, export.FormatYAML, export.FormatXLSX} {
		var buf bytes.Buffer
		if err := svc.Snapshot(ctx, &buf, format); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		text := buf.String()
		if format == export.FormatXLSX {
			text = xlsxText(t, buf.Bytes())
		}
		if !strings.Contains(text, "sana@gtech.com") {
			t.Fatalf("%s export is missing the new user", format)
		}
		if strings.Contains(strings.ToLower(text), "passwordhash") || strings.Contains(text, "$2a$") {
			t.Fatalf("%s export leaks a password hash", format)
		}
	}
}

// xlsxText 把所有工作表的儲存格串成一段文字
func xlsxText(t *testing.T, data []byte) string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	var sb strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			t.Fatal(err)
		}
		for _, row := range rows {
			sb.WriteString(strings.Join(row, "\t"))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
