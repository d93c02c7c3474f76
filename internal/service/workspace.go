package service

import (
	"context"
	"strconv"
	"strings"

	"hrdesk/config"
	"hrdesk/internal/core"
	"hrdesk/internal/database/slot"
	"hrdesk/internal/fixture"
	"hrdesk/internal/model"
	"hrdesk/internal/store"

	"go.uber.org/zap"
)

// Workspace 所有頁面共用的資料狀態；每個欄位對應一個 slot
type Workspace struct {
	Employees    *store.Collection[model.Employee, int]
	Documents    *store.Value[model.DocumentsByEmployee]
	Attendance   *store.Collection[model.AttendanceRecord, int]
	Complaints   *store.Collection[model.Complaint, string]
	Applications *store.Collection[model.LeaveApplication, string]
	Events       *store.Collection[model.EventRecord, string]
	Calendar     *store.Collection[model.CalendarEvent, string]
	Inventory    *store.Collection[model.InventoryItem, string]
	Abandoned    *store.Collection[model.AbandonedItem, int]
	Users        *store.Collection[model.DashboardUser, string]

	AdminDetails    *store.Value[model.AdminDetails]
	IsAuthenticated *store.Value[bool]
	UserEmail       *store.Value[string]
	Avatar          *store.Value[string]
	Theme           *store.Value[core.Theme]
	Layout          *store.Value[core.Layout]
	FontSize        *store.Value[core.FontSize]

	Registry *store.Registry

	departments []model.Department
}

// NewWorkspace 建立所有 store，尚未讀取 slot；由 Registry.LoadAll 載入
func NewWorkspace(conf *config.Configuration, logger *zap.Logger, backend slot.Backend) (*Workspace, error) {
	departments, err := fixture.Departments()
	if err != nil {
		return nil, err
	}

	fallback := conf.Store.FallbackOnCorrupt
	ws := &Workspace{departments: departments}

	ws.Documents = store.NewValue(backend, store.ValueOptions[model.DocumentsByEmployee]{
		Slot:              core.SlotEmployeeDocuments,
		Default:           func() model.DocumentsByEmployee { return model.DocumentsByEmployee{} },
		FallbackOnCorrupt: fallback,
		Logger:            logger,
	})
	ws.Employees = store.NewCollection(backend, store.Options[model.Employee, int]{
		Slot:      core.SlotEmployees,
		Fixture:   fixture.Employees,
		KeyOf:     func(e model.Employee) int { return e.ID },
		SetKey:    func(e *model.Employee, id int) { e.ID = id },
		NextKey:   store.NextInt,
		Placement: store.Prepend,
		// 員工刪除後一併移除文件
		OnDelete: func(ctx context.Context, id int) error {
			_, err := ws.Documents.Update(ctx, func(docs *model.DocumentsByEmployee) error {
				delete(*docs, id)
				return nil
			})
			return err
		},
		FallbackOnCorrupt: fallback,
		Logger:            logger,
	})
	ws.Attendance = store.NewCollection(backend, store.Options[model.AttendanceRecord, int]{
		Slot:              core.SlotAttendance,
		Fixture:           fixture.Attendance,
		KeyOf:             func(r model.AttendanceRecord) int { return r.ID },
		SetKey:            func(r *model.AttendanceRecord, id int) { r.ID = id },
		NextKey:           store.NextInt,
		Placement:         store.Append,
		FallbackOnCorrupt: fallback,
		Logger:            logger,
	})
	ws.Complaints = store.NewCollection(backend, store.Options[model.Complaint, string]{
		Slot:              core.SlotComplaints,
		Fixture:           fixture.Complaints,
		KeyOf:             func(c model.Complaint) string { return c.ID },
		SetKey:            func(c *model.Complaint, id string) { c.ID = id },
		NextKey:           store.NextUUID,
		Placement:         store.Prepend,
		FallbackOnCorrupt: fallback,
		Logger:            logger,
	})
	ws.Applications = store.NewCollection(backend, store.Options[model.LeaveApplication, string]{
		Slot:              core.SlotApplications,
		Fixture:           fixture.Applications,
		KeyOf:             func(a model.LeaveApplication) string { return a.ID },
		SetKey:            func(a *model.LeaveApplication, id string) { a.ID = id },
		NextKey:           store.NextUUID,
		Placement:         store.Prepend,
		FallbackOnCorrupt: fallback,
		Logger:            logger,
	})
	ws.Events = store.NewCollection(backend, store.Options[model.EventRecord, string]{
		Slot:              core.SlotEvents,
		Fixture:           fixture.Events,
		KeyOf:             func(e model.EventRecord) string { return e.ID },
		SetKey:            func(e *model.EventRecord, id string) { e.ID = id },
		NextKey:           store.NextUUID,
		Placement:         store.Prepend,
		FallbackOnCorrupt: fallback,
		Logger:            logger,
	})
	ws.Calendar = store.NewCollection(backend, store.Options[model.CalendarEvent, string]{
		Slot:              core.SlotCalendarEvents,
		Fixture:           fixture.Calendar,
		KeyOf:             func(e model.CalendarEvent) string { return e.ID },
		SetKey:            func(e *model.CalendarEvent, id string) { e.ID = id },
		NextKey:           store.NextUUID,
		Placement:         store.Append,
		FallbackOnCorrupt: fallback,
		Logger:            logger,
	})
	// 庫存以品名為 key
	ws.Inventory = store.NewCollection(backend, store.Options[model.InventoryItem, string]{
		Slot:              core.SlotFacilitiesInventory,
		Fixture:           fixture.Inventory,
		KeyOf:             func(i model.InventoryItem) string { return i.Item },
		SetKey:            func(i *model.InventoryItem, name string) { i.Item = name },
		Placement:         store.Prepend,
		FallbackOnCorrupt: fallback,
		Logger:            logger,
	})
	ws.Abandoned = store.NewCollection(backend, store.Options[model.AbandonedItem, int]{
		Slot:              core.SlotFacilitiesAbandoned,
		Fixture:           fixture.Abandoned,
		KeyOf:             func(a model.AbandonedItem) int { return a.ID },
		SetKey:            func(a *model.AbandonedItem, id int) { a.ID = id },
		NextKey:           store.NextInt,
		Placement:         store.Prepend,
		FallbackOnCorrupt: fallback,
		Logger:            logger,
	})
	ws.Users = store.NewCollection(backend, store.Options[model.DashboardUser, string]{
		Slot:              core.SlotDashboardUsers,
		Fixture:           fixture.Users,
		KeyOf:             func(u model.DashboardUser) string { return u.ID },
		SetKey:            func(u *model.DashboardUser, id string) { u.ID = id },
		Placement:         store.Append,
		FallbackOnCorrupt: fallback,
		Logger:            logger,
	})

	ws.AdminDetails = store.NewValue(backend, store.ValueOptions[model.AdminDetails]{
		Slot: core.SlotAdminDetails,
		Default: func() model.AdminDetails {
			return model.AdminDetails{Name: "Super Admin", Email: "admin@" + conf.Admin.EmailDomain}
		},
		FallbackOnCorrupt: fallback,
		Logger:            logger,
	})
	ws.IsAuthenticated = store.NewValue(backend, store.ValueOptions[bool]{
		Slot:              core.SlotIsAuthenticated,
		FallbackOnCorrupt: fallback,
		Logger:            logger,
	})
	ws.UserEmail = store.NewValue(backend, store.ValueOptions[string]{
		Slot:              core.SlotUserEmail,
		FallbackOnCorrupt: fallback,
		Logger:            logger,
	})
	ws.Avatar = store.NewValue(backend, store.ValueOptions[string]{
		Slot:              core.SlotUserAvatar,
		Default:           func() string { return core.DefaultAvatarURL },
		FallbackOnCorrupt: fallback,
		Logger:            logger,
	})
	ws.Theme = store.NewValue(backend, store.ValueOptions[core.Theme]{
		Slot:              core.SlotTheme,
		Default:           func() core.Theme { return core.ThemeDark },
		FallbackOnCorrupt: fallback,
		Logger:            logger,
	})
	ws.Layout = store.NewValue(backend, store.ValueOptions[core.Layout]{
		Slot:              core.SlotLayout,
		Default:           func() core.Layout { return core.LayoutStandard },
		FallbackOnCorrupt: fallback,
		Logger:            logger,
	})
	ws.FontSize = store.NewValue(backend, store.ValueOptions[core.FontSize]{
		Slot:              core.SlotFontSize,
		Default:           func() core.FontSize { return core.FontMedium },
		FallbackOnCorrupt: fallback,
		Logger:            logger,
	})

	ws.Registry = store.NewRegistry(logger,
		ws.IsAuthenticated, ws.UserEmail, ws.Avatar, ws.Theme, ws.Layout, ws.FontSize,
		ws.Employees, ws.Documents, ws.Attendance, ws.Users, ws.AdminDetails,
		ws.Complaints, ws.Events, ws.Applications, ws.Calendar,
		ws.Inventory, ws.Abandoned,
	)
	return ws, nil
}

// ProvideWorkspace 建立 Workspace 並掛上 audit observer
func ProvideWorkspace(conf *config.Configuration, logger *zap.Logger, backend slot.Backend, audit *StoreAudit) (*Workspace, error) {
	ws, err := NewWorkspace(conf, logger, backend)
	if err != nil {
		return nil, err
	}
	ws.Registry.Subscribe(audit)
	return ws, nil
}

// Departments 部門清單來自內建資料，不寫入 slot
func (w *Workspace) Departments() []model.Department {
	return append([]model.Department(nil), w.departments...)
}

// LookupEmployee 參照可以是數字 id 或員工姓名（不分大小寫）
func (w *Workspace) LookupEmployee(ctx context.Context, ref string) (model.Employee, bool, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.Employee{}, false, nil
	}
	if id, err := strconv.Atoi(ref); err == nil {
		if emp, found, err := w.Employees.Get(ctx, id); err != nil || found {
			return emp, found, err
		}
	}
	matches, err := w.Employees.Filter(ctx, func(e model.Employee) bool {
		return strings.EqualFold(e.Name, ref)
	})
	if err != nil || len(matches) == 0 {
		return model.Employee{}, false, err
	}
	return matches[0], true, nil
}
