package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hrdesk/config"
	"hrdesk/internal/core"
	"hrdesk/internal/database/slot"
	"hrdesk/internal/i18n"
	cErr "hrdesk/internal/pkg/error"
	"hrdesk/internal/telemetry"

	"go.uber.org/zap"
)

type testEnv struct {
	conf       *config.Configuration
	backend    *slot.Memory
	ws         *Workspace
	trace      *telemetry.Trace
	translator *i18n.Translator
}

func testConfig() *config.Configuration {
	conf := &config.Configuration{}
	conf.App.Name = "hrdesk"
	conf.App.SecretKey = "test-secret"
	conf.App.Locale = "en"
	conf.Auth.TokenTTL = 3600
	conf.Admin.EmailDomain = "gtech.com"
	conf.Dashboard.ReferenceDate = "2026-01-06"
	conf.Store.FallbackOnCorrupt = true
	return conf
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	conf := testConfig()
	backend := slot.NewMemory()
	ws, err := NewWorkspace(conf, zap.NewNop(), backend)
	if err != nil {
		t.Fatalf("NewWorkspace: %v", err)
	}
	if err := ws.Registry.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	translator, err := i18n.NewTranslator(conf, zap.NewNop())
	if err != nil {
		t.Fatalf("NewTranslator: %v", err)
	}
	return &testEnv{conf: conf, backend: backend, ws: ws, trace: &telemetry.Trace{}, translator: translator}
}

// freezeToday 固定 today() 的回傳值
func freezeToday(t *testing.T, day string) {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", day+" 10:30")
	if err != nil {
		t.Fatal(err)
	}
	prev := nowFunc
	nowFunc = func() time.Time { return ts }
	t.Cleanup(func() { nowFunc = prev })
}

func assertStatus(t *testing.T, err error, want int) {
	t.Helper()
	var appErr *cErr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected app error with status %d, got %v", want, err)
	}
	if appErr.HttpCode() != want {
		t.Fatalf("expected status %d, got %d (%s)", want, appErr.HttpCode(), appErr.ErrorDesc())
	}
}

func TestWorkspaceSeedsEverySlot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, name := range []core.SlotName{core.SlotEmployees, core.SlotAttendance, core.SlotComplaints, core.SlotFacilitiesInventory, core.SlotDashboardUsers} {
		if _, err := env.backend.Get(ctx, name); err != nil {
			t.Fatalf("slot %s not seeded: %v", name, err)
		}
	}
	// 設定類的預設值不寫入
	if _, err := env.backend.Get(ctx, core.SlotTheme); !errors.Is(err, slot.ErrNotFound) {
		t.Fatalf("theme default should not be persisted, got %v", err)
	}
}

func TestLookupEmployeeByIDOrName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	emp, found, err := env.ws.LookupEmployee(ctx, "6")
	if err != nil || !found || emp.Name != "Hina Javed" {
		t.Fatalf("by id: %+v %v %v", emp, found, err)
	}
	emp, found, err = env.ws.LookupEmployee(ctx, "  sara KHAN ")
	if err != nil || !found || emp.ID != 2 {
		t.Fatalf("by name: %+v %v %v", emp, found, err)
	}
	if _, found, _ := env.ws.LookupEmployee(ctx, "99"); found {
		t.Fatal("unknown id should not resolve")
	}
}

func TestResetRestoresFixtures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.ws.Employees.Delete(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if err := env.ws.Registry.Reset(ctx, "employees-data"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	n, _ := env.ws.Employees.Count(ctx, nil)
	if n != 6 {
		t.Fatalf("expected 6 employees after reset, got %d", n)
	}
	if err := env.ws.Registry.Reset(ctx, "nope"); err == nil {
		t.Fatal("expected error for unknown slot")
	}
}

func TestStatusFromStoreErrors(t *testing.T) {
	assertStatus(t, storeError("x", errors.New("boom")), http.StatusInternalServerError)
	assertStatus(t, storeError("x", cErr.NotFound("gone")), http.StatusNotFound)
	if storeError("x", nil) != nil {
		t.Fatal("nil in, nil out")
	}
}
