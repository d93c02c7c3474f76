package command

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"hrdesk/config"
	"hrdesk/internal/database/slot"
	"hrdesk/internal/dto"
	"hrdesk/internal/service"
	"hrdesk/internal/telemetry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*StoreHandler, *service.Workspace, *cobra.Command, *bytes.Buffer) {
	t.Helper()
	conf := &config.Configuration{}
	conf.Admin.EmailDomain = "gtech.com"
	conf.Store.FallbackOnCorrupt = true
	ws, err := service.NewWorkspace(conf, zap.NewNop(), slot.NewMemory())
	if err != nil {
		t.Fatalf("NewWorkspace: %v", err)
	}
	if err := ws.Registry.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	trace := &telemetry.Trace{}
	exportService := service.NewExportService(trace, zap.NewNop(), ws)

	out := &bytes.Buffer{}
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(out)
	return NewStoreHandler(zap.NewNop(), ws, exportService), ws, cmd, out
}

func TestSeedRestoresFixture(t *testing.T) {
	h, ws, cmd, _ := newTestHandler(t)
	ctx := context.Background()
	trace := &telemetry.Trace{}
	conf := &config.Configuration{}
	employees := service.NewEmployeeService(trace, conf, zap.NewNop(), ws)

	seeded, _ := ws.Employees.List(ctx)
	if _, err := employees.Create(ctx, &dto.CreateEmployeeDto{Name: "Temp", Designation: "Intern", Department: "IT"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := h.Seed(cmd, []string{"employees-data"}); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	after, _ := ws.Employees.List(ctx)
	if len(after) != len(seeded) {
		t.Fatalf("after seed len = %d, want %d", len(after), len(seeded))
	}
}

func TestSeedUnknownSlot(t *testing.T) {
	h, _, cmd, _ := newTestHandler(t)
	if err := h.Seed(cmd, []string{"no-such-slot"}); err == nil {
		t.Fatal("expected error for unknown slot")
	}
}

func TestExportToStdout(t *testing.T) {
	h, ws, cmd, out := newTestHandler(t)
	if err := h.Export(cmd, "json", ""); err != nil {
		t.Fatalf("Export: %v", err)
	}
	var snapshot map[string]json.RawMessage
	if err := json.Unmarshal(out.Bytes(), &snapshot); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(snapshot) != len(ws.Registry.Names()) {
		t.Fatalf("slots = %d, want %d", len(snapshot), len(ws.Registry.Names()))
	}
}

func TestExportToFile(t *testing.T) {
	h, _, cmd, _ := newTestHandler(t)
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := h.Export(cmd, "yml", path); err != nil {
		t.Fatalf("Export: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("empty export file")
	}
}

func TestExportRejectsFormat(t *testing.T) {
	h, _, cmd, _ := newTestHandler(t)
	if err := h.Export(cmd, "csv", ""); err == nil {
		t.Fatal("expected unsupported format error")
	}
}
