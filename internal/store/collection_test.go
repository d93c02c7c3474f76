package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"hrdesk/internal/core"
	"hrdesk/internal/database/slot"
	"hrdesk/internal/store"
)

type record struct {
	ID   int      `json:"id"`
	Name string   `json:"name"`
	Tags []string `json:"tags,omitempty"`
}

type named struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

const testSlot core.SlotName = "test-records"

func seed(items ...record) func() ([]record, error) {
	return func() ([]record, error) { return items, nil }
}

func newRecords(backend slot.Backend, placement store.Placement, fixture func() ([]record, error)) *store.Collection[record, int] {
	return store.NewCollection(backend, store.Options[record, int]{
		Slot:      testSlot,
		Fixture:   fixture,
		KeyOf:     func(r record) int { return r.ID },
		SetKey:    func(r *record, id int) { r.ID = id },
		NextKey:   store.NextInt,
		Placement: placement,
	})
}

// failingBackend 可切換成寫入失敗
type failingBackend struct {
	*slot.Memory
	mu   sync.Mutex
	fail bool
}

func (f *failingBackend) Set(ctx context.Context, name core.SlotName, value []byte) error {
	f.mu.Lock()
	fail := f.fail
	f.mu.Unlock()
	if fail {
		return errors.New("disk full")
	}
	return f.Memory.Set(ctx, name, value)
}

func (f *failingBackend) setFail(v bool) {
	f.mu.Lock()
	f.fail = v
	f.mu.Unlock()
}

func TestLoadSeedsFixtureAndWritesBack(t *testing.T) {
	ctx := context.Background()
	backend := slot.NewMemory()
	c := newRecords(backend, store.Prepend, seed(record{ID: 1, Name: "a"}, record{ID: 2, Name: "b"}))

	if err := c.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	raw, err := backend.Get(ctx, testSlot)
	if err != nil {
		t.Fatalf("fixture not written back: %v", err)
	}
	if string(raw) != `[{"id":1,"name":"a"},{"id":2,"name":"b"}]` {
		t.Fatalf("unexpected slot content %s", raw)
	}
}

func TestLoadPrefersStoredValue(t *testing.T) {
	ctx := context.Background()
	backend := slot.NewMemory()
	_ = backend.Set(ctx, testSlot, []byte(`[{"id":9,"name":"stored"}]`))

	c := newRecords(backend, store.Prepend, seed(record{ID: 1, Name: "fixture"}))
	items, err := c.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].ID != 9 {
		t.Fatalf("expected stored list, got %+v", items)
	}
}

func TestCreatePrependsWithNextNumericID(t *testing.T) {
	ctx := context.Background()
	c := newRecords(slot.NewMemory(), store.Prepend, seed(record{ID: 1, Name: "a"}, record{ID: 2, Name: "b"}))

	created, err := c.Create(ctx, record{Name: "c"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 3 {
		t.Fatalf("expected id 3, got %d", created.ID)
	}

	items, _ := c.List(ctx)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].ID != 3 {
		t.Fatalf("expected new record first, got %+v", items[0])
	}
}

func TestCreateAppends(t *testing.T) {
	ctx := context.Background()
	c := newRecords(slot.NewMemory(), store.Append, seed(record{ID: 4, Name: "a"}))

	created, err := c.Create(ctx, record{Name: "b"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	items, _ := c.List(ctx)
	if items[len(items)-1].ID != created.ID || created.ID != 5 {
		t.Fatalf("expected appended id 5, got %+v", items)
	}
}

func TestCreateOnEmptyStartsAtOne(t *testing.T) {
	c := newRecords(slot.NewMemory(), store.Prepend, nil)
	created, err := c.Create(context.Background(), record{Name: "first"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}
}

func TestNumericIDsStrictlyIncrease(t *testing.T) {
	ctx := context.Background()
	c := newRecords(slot.NewMemory(), store.Prepend, seed(record{ID: 7}, record{ID: 3}))

	prevMax := 7
	for i := 0; i < 5; i++ {
		created, err := c.Create(ctx, record{})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.ID <= prevMax {
			t.Fatalf("id %d not greater than %d", created.ID, prevMax)
		}
		prevMax = created.ID
	}
}

func TestStringIDsUnique(t *testing.T) {
	ctx := context.Background()
	c := store.NewCollection(slot.NewMemory(), store.Options[named, string]{
		Slot:    testSlot,
		KeyOf:   func(n named) string { return n.ID },
		SetKey:  func(n *named, id string) { n.ID = id },
		NextKey: store.NextUUID,
	})

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		created, err := c.Create(ctx, named{Title: "x"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.ID == "" || seen[created.ID] {
			t.Fatalf("duplicate or empty id %q", created.ID)
		}
		seen[created.ID] = true
	}
}

func TestSuppliedKeyRejectsDuplicateAndEmpty(t *testing.T) {
	ctx := context.Background()
	c := store.NewCollection(slot.NewMemory(), store.Options[named, string]{
		Slot:      testSlot,
		Fixture:   func() ([]named, error) { return []named{{ID: "sara", Title: "Sara"}}, nil },
		KeyOf:     func(n named) string { return n.ID },
		SetKey:    func(n *named, id string) { n.ID = id },
		Placement: store.Append,
	})

	if _, err := c.Create(ctx, named{ID: "sara"}); !errors.Is(err, store.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if _, err := c.Create(ctx, named{}); !errors.Is(err, store.ErrEmptyKey) {
		t.Fatalf("expected ErrEmptyKey, got %v", err)
	}
	if _, err := c.Create(ctx, named{ID: "ali"}); err != nil {
		t.Fatalf("create: %v", err)
	}
}

func TestCreateThenDeleteRoundTrips(t *testing.T) {
	ctx := context.Background()
	c := newRecords(slot.NewMemory(), store.Prepend, seed(record{ID: 1, Name: "a"}, record{ID: 2, Name: "b"}))
	before, _ := c.List(ctx)

	created, err := c.Create(ctx, record{Name: "tmp"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	found, err := c.Delete(ctx, created.ID)
	if err != nil || !found {
		t.Fatalf("delete: found=%v err=%v", found, err)
	}

	after, _ := c.List(ctx)
	if len(after) != len(before) {
		t.Fatalf("expected %d items, got %d", len(before), len(after))
	}
	for i := range before {
		if before[i].ID != after[i].ID || before[i].Name != after[i].Name {
			t.Fatalf("list changed at %d: %+v vs %+v", i, before[i], after[i])
		}
	}
}

func TestUpdateMergesOneRecord(t *testing.T) {
	ctx := context.Background()
	c := newRecords(slot.NewMemory(), store.Prepend, seed(record{ID: 1, Name: "a"}, record{ID: 2, Name: "b"}))

	updated, found, err := c.Update(ctx, 2, func(r *record) error {
		r.Name = "bee"
		r.ID = 99 // key 不能被改
		return nil
	})
	if err != nil || !found {
		t.Fatalf("update: found=%v err=%v", found, err)
	}
	if updated.ID != 2 || updated.Name != "bee" {
		t.Fatalf("unexpected updated record %+v", updated)
	}

	items, _ := c.List(ctx)
	if items[0].Name != "a" || items[1].Name != "bee" {
		t.Fatalf("unexpected list %+v", items)
	}
}

func TestUpdateMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	backend := slot.NewMemory()
	c := newRecords(backend, store.Prepend, seed(record{ID: 1}))
	_ = c.Load(ctx)
	before, _ := backend.Get(ctx, testSlot)

	called := false
	_, found, err := c.Update(ctx, 42, func(r *record) error { called = true; return nil })
	if err != nil || found || called {
		t.Fatalf("expected silent no-op, got found=%v called=%v err=%v", found, called, err)
	}
	after, _ := backend.Get(ctx, testSlot)
	if string(before) != string(after) {
		t.Fatal("slot should not be rewritten")
	}
}

func TestUpdateMutateErrorLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	c := newRecords(slot.NewMemory(), store.Prepend, seed(record{ID: 1, Name: "a", Tags: []string{"x"}}))

	boom := errors.New("invalid")
	_, found, err := c.Update(ctx, 1, func(r *record) error {
		r.Name = "changed"
		r.Tags[0] = "mutated"
		return boom
	})
	if !found || !errors.Is(err, boom) {
		t.Fatalf("expected mutate error, got found=%v err=%v", found, err)
	}
	got, _, _ := c.Get(ctx, 1)
	if got.Name != "a" || got.Tags[0] != "x" {
		t.Fatalf("committed record changed: %+v", got)
	}
}

func TestFailedWriteRollsBack(t *testing.T) {
	ctx := context.Background()
	backend := &failingBackend{Memory: slot.NewMemory()}
	c := newRecords(backend, store.Prepend, seed(record{ID: 1, Name: "a"}))
	if err := c.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	backend.setFail(true)
	if _, err := c.Create(ctx, record{Name: "lost"}); err == nil {
		t.Fatal("expected write error")
	}
	if _, _, err := c.Update(ctx, 1, func(r *record) error { r.Name = "lost"; return nil }); err == nil {
		t.Fatal("expected write error")
	}
	if _, err := c.Delete(ctx, 1); err == nil {
		t.Fatal("expected write error")
	}

	items, _ := c.List(ctx)
	if len(items) != 1 || items[0].Name != "a" {
		t.Fatalf("in-memory list should be unchanged, got %+v", items)
	}

	backend.setFail(false)
	created, err := c.Create(ctx, record{Name: "ok"})
	if err != nil || created.ID != 2 {
		t.Fatalf("expected id 2 after recovery, got %+v %v", created, err)
	}
}

func TestDeleteRunsCascade(t *testing.T) {
	ctx := context.Background()
	var cascaded []int
	c := store.NewCollection(slot.NewMemory(), store.Options[record, int]{
		Slot:     testSlot,
		Fixture:  seed(record{ID: 1}, record{ID: 2}),
		KeyOf:    func(r record) int { return r.ID },
		SetKey:   func(r *record, id int) { r.ID = id },
		NextKey:  store.NextInt,
		OnDelete: func(_ context.Context, id int) error { cascaded = append(cascaded, id); return nil },
	})

	if found, err := c.Delete(ctx, 2); err != nil || !found {
		t.Fatalf("delete: found=%v err=%v", found, err)
	}
	if found, _ := c.Delete(ctx, 2); found {
		t.Fatal("second delete should report not found")
	}
	if len(cascaded) != 1 || cascaded[0] != 2 {
		t.Fatalf("expected cascade for id 2 only, got %v", cascaded)
	}
}

func TestDeleteNotifiesEvenWhenCascadeFails(t *testing.T) {
	ctx := context.Background()
	backend := slot.NewMemory()
	c := store.NewCollection(backend, store.Options[record, int]{
		Slot:     testSlot,
		Fixture:  seed(record{ID: 1}, record{ID: 2}),
		KeyOf:    func(r record) int { return r.ID },
		SetKey:   func(r *record, id int) { r.ID = id },
		NextKey:  store.NextInt,
		OnDelete: func(context.Context, int) error { return errors.New("dependents unavailable") },
	})

	var changes []store.Change
	c.Subscribe(store.ObserverFunc(func(_ context.Context, ch store.Change) {
		changes = append(changes, ch)
	}))

	found, err := c.Delete(ctx, 2)
	if !found || err == nil {
		t.Fatalf("delete: found=%v err=%v", found, err)
	}
	if len(changes) != 1 || changes[0].Op != store.OpDelete || changes[0].Key != "2" || changes[0].Records != 1 {
		t.Fatalf("expected one delete notification, got %+v", changes)
	}
	raw, _ := backend.Get(ctx, testSlot)
	if string(raw) != `[{"id":1,"name":""}]` {
		t.Fatalf("slot should hold the committed delete, got %s", raw)
	}
}

func TestCorruptSlot(t *testing.T) {
	ctx := context.Background()
	backend := slot.NewMemory()
	_ = backend.Set(ctx, testSlot, []byte(`{not json`))

	strict := newRecords(backend, store.Prepend, seed(record{ID: 1}))
	if err := strict.Load(ctx); !errors.Is(err, store.ErrCorruptSlot) {
		t.Fatalf("expected ErrCorruptSlot, got %v", err)
	}

	lenient := store.NewCollection(backend, store.Options[record, int]{
		Slot:              testSlot,
		Fixture:           seed(record{ID: 1, Name: "fixture"}),
		KeyOf:             func(r record) int { return r.ID },
		FallbackOnCorrupt: true,
	})
	items, err := lenient.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Name != "fixture" {
		t.Fatalf("expected fixture fallback, got %+v", items)
	}
}

func TestReloadPicksUpExternalWrite(t *testing.T) {
	ctx := context.Background()
	backend := slot.NewMemory()
	c := newRecords(backend, store.Prepend, seed(record{ID: 1}))
	_ = c.Load(ctx)

	_ = backend.Set(ctx, testSlot, []byte(`[{"id":1},{"id":2},{"id":3}]`))
	if n, _ := c.Count(ctx, nil); n != 1 {
		t.Fatalf("expected cached count 1, got %d", n)
	}
	if err := c.Reload(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if n, _ := c.Count(ctx, nil); n != 3 {
		t.Fatalf("expected 3 after reload, got %d", n)
	}
}

func TestResetRestoresFixture(t *testing.T) {
	ctx := context.Background()
	c := newRecords(slot.NewMemory(), store.Prepend, seed(record{ID: 1}, record{ID: 2}))
	_, _ = c.Create(ctx, record{})
	_, _ = c.Delete(ctx, 1)

	if err := c.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	items, _ := c.List(ctx)
	if len(items) != 2 || items[0].ID != 1 || items[1].ID != 2 {
		t.Fatalf("expected fixture, got %+v", items)
	}
}

func TestObserversNotifiedAfterCommit(t *testing.T) {
	ctx := context.Background()
	backend := &failingBackend{Memory: slot.NewMemory()}
	c := newRecords(backend, store.Prepend, seed(record{ID: 1}))

	var changes []store.Change
	c.Subscribe(store.ObserverFunc(func(_ context.Context, ch store.Change) {
		changes = append(changes, ch)
	}))

	if _, err := c.Create(ctx, record{Name: "x"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	backend.setFail(true)
	_, _ = c.Create(ctx, record{Name: "y"})

	if len(changes) != 1 {
		t.Fatalf("expected exactly one notification, got %+v", changes)
	}
	if changes[0].Op != store.OpCreate || changes[0].Key != "2" || changes[0].Records != 2 {
		t.Fatalf("unexpected change %+v", changes[0])
	}
}

func TestConcurrentCreatesKeepIDsUnique(t *testing.T) {
	ctx := context.Background()
	c := newRecords(slot.NewMemory(), store.Append, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Create(ctx, record{})
		}()
	}
	wg.Wait()

	items, _ := c.List(ctx)
	seen := map[int]bool{}
	for _, it := range items {
		if seen[it.ID] {
			t.Fatalf("duplicate id %d", it.ID)
		}
		seen[it.ID] = true
	}
	if len(items) != 20 {
		t.Fatalf("expected 20 records, got %d", len(items))
	}
}
