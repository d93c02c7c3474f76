package store_test

import (
	"context"
	"errors"
	"testing"

	"hrdesk/internal/core"
	"hrdesk/internal/database/slot"
	"hrdesk/internal/store"
)

type docs map[int]string

func newDocs(backend slot.Backend) *store.Value[docs] {
	return store.NewValue(backend, store.ValueOptions[docs]{
		Slot:    core.SlotEmployeeDocuments,
		Default: func() docs { return docs{} },
	})
}

func TestValueDefaultNotPersisted(t *testing.T) {
	ctx := context.Background()
	backend := slot.NewMemory()
	v := newDocs(backend)

	got, err := v.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty default, got %v", got)
	}
	if _, err := backend.Get(ctx, core.SlotEmployeeDocuments); !errors.Is(err, slot.ErrNotFound) {
		t.Fatalf("default should not be written, got %v", err)
	}
}

func TestValueUpdateAndClear(t *testing.T) {
	ctx := context.Background()
	backend := slot.NewMemory()
	v := newDocs(backend)

	if _, err := v.Update(ctx, func(d *docs) error {
		(*d)[2] = "passport.png"
		(*d)[3] = "cnic.pdf"
		return nil
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	raw, _ := backend.Get(ctx, core.SlotEmployeeDocuments)
	if string(raw) != `{"2":"passport.png","3":"cnic.pdf"}` {
		t.Fatalf("unexpected slot %s", raw)
	}

	got, _ := v.Get(ctx)
	got[9] = "caller mutation"
	again, _ := v.Get(ctx)
	if _, leaked := again[9]; leaked {
		t.Fatal("Get should return a copy")
	}

	if err := v.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := backend.Get(ctx, core.SlotEmployeeDocuments); !errors.Is(err, slot.ErrNotFound) {
		t.Fatalf("expected slot removed, got %v", err)
	}
	after, _ := v.Get(ctx)
	if len(after) != 0 {
		t.Fatalf("expected default after clear, got %v", after)
	}
}

func TestValueCorrupt(t *testing.T) {
	ctx := context.Background()
	backend := slot.NewMemory()
	_ = backend.Set(ctx, core.SlotTheme, []byte(`dark`))

	strict := store.NewValue(backend, store.ValueOptions[string]{Slot: core.SlotTheme})
	if _, err := strict.Get(ctx); !errors.Is(err, store.ErrCorruptSlot) {
		t.Fatalf("expected ErrCorruptSlot, got %v", err)
	}

	lenient := store.NewValue(backend, store.ValueOptions[string]{
		Slot:              core.SlotTheme,
		Default:           func() string { return "dark" },
		FallbackOnCorrupt: true,
	})
	got, err := lenient.Get(ctx)
	if err != nil || got != "dark" {
		t.Fatalf("expected default fallback, got %q %v", got, err)
	}
}
