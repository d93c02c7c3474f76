package database

import (
	"context"
	"errors"
	"testing"

	"hrdesk/config"
	"hrdesk/internal/core"
	"hrdesk/internal/database/slot"
	"hrdesk/internal/telemetry"

	"go.uber.org/zap"
)

func TestSlotBackendCleanupClosesCompressor(t *testing.T) {
	ctx := context.Background()
	conf := &config.Configuration{}
	conf.Storage.Driver = string(core.StorageMemory)
	conf.Storage.Compression = string(core.CompressionZstd)

	backend, cleanup, err := NewSlotBackend(zap.NewNop(), conf, &telemetry.Trace{}, telemetry.NewMetric(conf))
	if err != nil {
		t.Fatalf("NewSlotBackend: %v", err)
	}
	if err := backend.Set(ctx, core.SlotTheme, []byte(`"dark"`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, err := backend.Get(ctx, core.SlotTheme); err != nil || string(got) != `"dark"` {
		t.Fatalf("get = %q, %v", got, err)
	}

	cleanup()
	_, err = backend.Get(ctx, core.SlotTheme)
	if err == nil || errors.Is(err, slot.ErrNotFound) {
		t.Fatalf("get after cleanup should report a closed backend, got %v", err)
	}
}

func TestSlotBackendRejectsUnknownCompression(t *testing.T) {
	conf := &config.Configuration{}
	conf.Storage.Driver = string(core.StorageMemory)
	conf.Storage.Compression = "lz4"

	if _, _, err := NewSlotBackend(zap.NewNop(), conf, &telemetry.Trace{}, telemetry.NewMetric(conf)); err == nil {
		t.Fatal("expected unknown compression to fail")
	}
}
