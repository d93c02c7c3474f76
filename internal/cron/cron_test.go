package cron

import (
	"context"
	"encoding/json"
	"testing"

	"hrdesk/config"
	"hrdesk/internal/core"
	"hrdesk/internal/database/slot"
	"hrdesk/internal/model"
	"hrdesk/internal/service"
	"hrdesk/internal/telemetry"

	"go.uber.org/zap"
)

func newTestCron(t *testing.T, spec string) (*Cron, *slot.Memory, *service.Workspace) {
	t.Helper()
	conf := &config.Configuration{}
	conf.Admin.EmailDomain = "gtech.com"
	conf.Store.FallbackOnCorrupt = true
	conf.Store.ResyncSpec = spec
	backend := slot.NewMemory()
	ws, err := service.NewWorkspace(conf, zap.NewNop(), backend)
	if err != nil {
		t.Fatalf("NewWorkspace: %v", err)
	}
	if err := ws.Registry.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	return NewCron(zap.NewNop(), conf, &telemetry.Trace{}, ws), backend, ws
}

func TestResyncPicksUpExternalWrite(t *testing.T) {
	c, backend, ws := newTestCron(t, "")
	ctx := context.Background()

	// 另一個實例直接寫入 slot
	raw, err := json.Marshal([]model.Employee{{ID: 42, Name: "Remote Writer"}})
	if err != nil {
		t.Fatal(err)
	}
	if err := backend.Set(ctx, core.SlotEmployees, raw); err != nil {
		t.Fatalf("Set: %v", err)
	}

	before, _ := ws.Employees.List(ctx)
	if len(before) == 1 {
		t.Fatalf("cache already reflects external write")
	}

	c.Resync()

	after, err := ws.Employees.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(after) != 1 || after[0].ID != 42 {
		t.Fatalf("after resync = %+v", after)
	}
}

func TestRunRejectsBadSpec(t *testing.T) {
	c, _, _ := newTestCron(t, "not a spec")
	if err := c.Run(); err == nil {
		t.Fatal("expected error for invalid spec")
	}
}

func TestRunAndStop(t *testing.T) {
	c, _, _ := newTestCron(t, "*/30 * * * * *")
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := c.Stop(context.Background()); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}
