package slot_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"hrdesk/internal/core"
	"hrdesk/internal/database/slot"
)

func TestMemoryGetMissing(t *testing.T) {
	m := slot.NewMemory()
	if _, err := m.Get(context.Background(), core.SlotEmployees); !errors.Is(err, slot.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemorySetGetDelete(t *testing.T) {
	ctx := context.Background()
	m := slot.NewMemory()

	value := []byte(`[{"id":1}]`)
	if err := m.Set(ctx, core.SlotEmployees, value); err != nil {
		t.Fatalf("set: %v", err)
	}
	value[0] = 'x' // 呼叫端改 buffer 不影響已存內容

	got, err := m.Get(ctx, core.SlotEmployees)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"id":1}]` {
		t.Fatalf("unexpected value %s", got)
	}

	names, _ := m.Names(ctx)
	if len(names) != 1 || names[0] != core.SlotEmployees {
		t.Fatalf("unexpected names %v", names)
	}

	if err := m.Delete(ctx, core.SlotEmployees); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := m.Get(ctx, core.SlotEmployees); !errors.Is(err, slot.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCompressedRoundTrip(t *testing.T) {
	payload := []byte(`[` + strings.Repeat(`{"item":"Laptop","qty":5,"status":"Available"},`, 200) + `{}]`)

	for _, algo := range []core.Compression{core.CompressionNone, core.CompressionZstd, core.CompressionBrotli} {
		t.Run(string(algo), func(t *testing.T) {
			ctx := context.Background()
			inner := slot.NewMemory()
			c, err := slot.NewCompressed(inner, algo, 64)
			if err != nil {
				t.Fatalf("new compressed: %v", err)
			}
			if err := c.Set(ctx, core.SlotFacilitiesInventory, payload); err != nil {
				t.Fatalf("set: %v", err)
			}

			stored, _ := inner.Get(ctx, core.SlotFacilitiesInventory)
			if algo != core.CompressionNone && len(stored) >= len(payload) {
				t.Fatalf("expected stored value to shrink, got %d >= %d", len(stored), len(payload))
			}

			got, err := c.Get(ctx, core.SlotFacilitiesInventory)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if !bytes.Equal(got, payload) {
				t.Fatalf("round trip mismatch")
			}
		})
	}
}

func TestCompressedSmallValueStaysPlain(t *testing.T) {
	ctx := context.Background()
	inner := slot.NewMemory()
	c, err := slot.NewCompressed(inner, core.CompressionZstd, 1024)
	if err != nil {
		t.Fatalf("new compressed: %v", err)
	}
	if err := c.Set(ctx, core.SlotTheme, []byte(`"dark"`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	stored, _ := inner.Get(ctx, core.SlotTheme)
	if string(stored) != `"dark"` {
		t.Fatalf("expected plain value, got %q", stored)
	}
}

func TestCompressedReadsOtherFormats(t *testing.T) {
	ctx := context.Background()
	inner := slot.NewMemory()
	payload := []byte(strings.Repeat("employees ", 100))

	writer, _ := slot.NewCompressed(inner, core.CompressionBrotli, 0)
	if err := writer.Set(ctx, core.SlotEmployees, payload); err != nil {
		t.Fatalf("set: %v", err)
	}

	reader, _ := slot.NewCompressed(inner, core.CompressionZstd, 0)
	got, err := reader.Get(ctx, core.SlotEmployees)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("brotli value not readable after switching to zstd")
	}
}

func TestNewCompressedRejectsUnknown(t *testing.T) {
	if _, err := slot.NewCompressed(slot.NewMemory(), "lz4", 0); err == nil {
		t.Fatal("expected error for unknown compression")
	}
}

func TestPrefixedIsolatesNames(t *testing.T) {
	ctx := context.Background()
	inner := slot.NewMemory()
	staging := slot.NewPrefixed(inner, "staging")
	prod := slot.NewPrefixed(inner, "prod")

	if err := staging.Set(ctx, core.SlotTheme, []byte(`"light"`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := prod.Get(ctx, core.SlotTheme); !errors.Is(err, slot.ErrNotFound) {
		t.Fatalf("prod should not see staging slot, got %v", err)
	}

	names, err := staging.Names(ctx)
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if len(names) != 1 || names[0] != core.SlotTheme {
		t.Fatalf("unexpected names %v", names)
	}

	raw, err := inner.Get(ctx, "staging:theme")
	if err != nil || string(raw) != `"light"` {
		t.Fatalf("expected prefixed raw key, got %q %v", raw, err)
	}
}

func TestPrefixedEmptyReturnsInner(t *testing.T) {
	inner := slot.NewMemory()
	if got := slot.NewPrefixed(inner, ""); got != slot.Backend(inner) {
		t.Fatal("empty prefix should return inner backend")
	}
}

func TestCompressedCloseIsIdempotent(t *testing.T) {
	ctx := context.Background()
	inner := slot.NewMemory()
	c, err := slot.NewCompressed(inner, core.CompressionZstd, 0)
	if err != nil {
		t.Fatalf("new compressed: %v", err)
	}
	if err := c.Set(ctx, core.SlotEvents, []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if _, err := c.Get(ctx, core.SlotEvents); err == nil {
		t.Fatal("get after close should fail")
	}
	if err := c.Set(ctx, core.SlotEvents, []byte(`[]`)); err == nil {
		t.Fatal("set after close should fail")
	}
	if _, err := inner.Get(ctx, core.SlotEvents); err != nil {
		t.Fatalf("inner backend must stay usable: %v", err)
	}
}
