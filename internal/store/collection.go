package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"hrdesk/internal/core"
	"hrdesk/internal/database/slot"

	"go.uber.org/zap"
)

// Options 設定一個 Collection
type Options[T any, K comparable] struct {
	Slot core.SlotName
	// Fixture slot 不存在時的初始資料；nil 代表空列表
	Fixture func() ([]T, error)
	KeyOf   func(T) K
	SetKey  func(*T, K)
	// NextKey 產生新 key；nil 代表由呼叫端自帶 key
	NextKey   func(existing []K) K
	Placement Placement
	// OnDelete 刪除提交後執行的連動刪除
	OnDelete          func(ctx context.Context, key K) error
	FallbackOnCorrupt bool
	Logger            *zap.Logger
}

// Collection 一個 slot 對應的有序列表
type Collection[T any, K comparable] struct {
	mu        sync.RWMutex
	backend   slot.Backend
	opts      Options[T, K]
	items     []T
	loaded    bool
	observers []Observer
}

func NewCollection[T any, K comparable](backend slot.Backend, opts Options[T, K]) *Collection[T, K] {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Collection[T, K]{backend: backend, opts: opts}
}

func (c *Collection[T, K]) Slot() core.SlotName { return c.opts.Slot }

func (c *Collection[T, K]) Subscribe(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

// Load 讀取 slot；不存在時寫入 fixture
func (c *Collection[T, K]) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked(ctx)
}

// Reload 重新讀取 slot，其他 instance 寫入的內容會蓋掉記憶體中的列表
func (c *Collection[T, K]) Reload(ctx context.Context) error {
	c.mu.Lock()
	if err := c.loadLocked(ctx); err != nil {
		c.mu.Unlock()
		return err
	}
	change := c.changeLocked(OpReload, "")
	c.mu.Unlock()

	c.notify(ctx, change)
	return nil
}

// Reset 把 slot 還原成 fixture
func (c *Collection[T, K]) Reset(ctx context.Context) error {
	c.mu.Lock()
	items, err := c.fixture()
	if err == nil {
		err = c.persistLocked(ctx, items)
	}
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.loaded = true
	change := c.changeLocked(OpReset, "")
	c.mu.Unlock()

	c.notify(ctx, change)
	return nil
}

func (c *Collection[T, K]) List(ctx context.Context) ([]T, error) {
	return c.read(ctx, func(items []T) []T {
		return append(make([]T, 0, len(items)), items...)
	})
}

func (c *Collection[T, K]) Filter(ctx context.Context, pred func(T) bool) ([]T, error) {
	return c.read(ctx, func(items []T) []T { return Where(items, pred) })
}

func (c *Collection[T, K]) Count(ctx context.Context, pred func(T) bool) (int, error) {
	items, err := c.read(ctx, func(items []T) []T { return items })
	if err != nil {
		return 0, err
	}
	if pred == nil {
		return len(items), nil
	}
	return CountWhere(items, pred), nil
}

func (c *Collection[T, K]) Get(ctx context.Context, key K) (T, bool, error) {
	var zero T
	items, err := c.read(ctx, func(items []T) []T {
		for _, item := range items {
			if c.opts.KeyOf(item) == key {
				return []T{item}
			}
		}
		return nil
	})
	if err != nil || len(items) == 0 {
		return zero, false, err
	}
	return items[0], true, nil
}

// Snapshot 匯出用
func (c *Collection[T, K]) Snapshot(ctx context.Context) (any, error) {
	return c.List(ctx)
}

// Create 指派 key、依 Placement 放入列表並寫回 slot
func (c *Collection[T, K]) Create(ctx context.Context, record T) (T, error) {
	var zero T
	c.mu.Lock()
	if err := c.ensureLoadedLocked(ctx); err != nil {
		c.mu.Unlock()
		return zero, err
	}

	key := c.opts.KeyOf(record)
	if c.opts.NextKey != nil {
		key = c.opts.NextKey(c.keysLocked())
		c.opts.SetKey(&record, key)
	} else if key == *new(K) {
		c.mu.Unlock()
		return zero, ErrEmptyKey
	}
	if c.indexLocked(key) >= 0 {
		c.mu.Unlock()
		return zero, fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}

	next := make([]T, 0, len(c.items)+1)
	if c.opts.Placement == Prepend {
		next = append(append(next, record), c.items...)
	} else {
		next = append(append(next, c.items...), record)
	}
	if err := c.persistLocked(ctx, next); err != nil {
		c.mu.Unlock()
		return zero, err
	}
	change := c.changeLocked(OpCreate, fmt.Sprint(key))
	c.mu.Unlock()

	c.notify(ctx, change)
	return record, nil
}

// Update 在副本上套用 mutate 後寫回；找不到時 found=false 且不寫入。
// mutate 回傳錯誤時不做任何變更。key 不可被 mutate 改掉。
func (c *Collection[T, K]) Update(ctx context.Context, key K, mutate func(*T) error) (T, bool, error) {
	var zero T
	c.mu.Lock()
	if err := c.ensureLoadedLocked(ctx); err != nil {
		c.mu.Unlock()
		return zero, false, err
	}

	idx := c.indexLocked(key)
	if idx < 0 {
		c.mu.Unlock()
		return zero, false, nil
	}
	updated, err := clone(c.items[idx])
	if err != nil {
		c.mu.Unlock()
		return zero, true, err
	}
	if err := mutate(&updated); err != nil {
		c.mu.Unlock()
		return zero, true, err
	}
	if c.opts.SetKey != nil {
		c.opts.SetKey(&updated, key)
	}

	next := slices.Clone(c.items)
	next[idx] = updated
	if err := c.persistLocked(ctx, next); err != nil {
		c.mu.Unlock()
		return zero, true, err
	}
	change := c.changeLocked(OpUpdate, fmt.Sprint(key))
	c.mu.Unlock()

	c.notify(ctx, change)
	return updated, true, nil
}

// Delete 移除後寫回並通知，再執行 OnDelete
func (c *Collection[T, K]) Delete(ctx context.Context, key K) (bool, error) {
	c.mu.Lock()
	if err := c.ensureLoadedLocked(ctx); err != nil {
		c.mu.Unlock()
		return false, err
	}

	idx := c.indexLocked(key)
	if idx < 0 {
		c.mu.Unlock()
		return false, nil
	}
	next := slices.Delete(slices.Clone(c.items), idx, idx+1)
	if err := c.persistLocked(ctx, next); err != nil {
		c.mu.Unlock()
		return true, err
	}
	change := c.changeLocked(OpDelete, fmt.Sprint(key))
	c.mu.Unlock()

	// 刪除已寫入 slot，cascade 成敗都要通知
	c.notify(ctx, change)
	if c.opts.OnDelete != nil {
		if err := c.opts.OnDelete(ctx, key); err != nil {
			return true, fmt.Errorf("cascade delete %s %v: %w", c.opts.Slot, key, err)
		}
	}
	return true, nil
}

// Replace 整批覆蓋
func (c *Collection[T, K]) Replace(ctx context.Context, items []T) error {
	c.mu.Lock()
	if err := c.persistLocked(ctx, slices.Clone(items)); err != nil {
		c.mu.Unlock()
		return err
	}
	c.loaded = true
	change := c.changeLocked(OpReplace, "")
	c.mu.Unlock()

	c.notify(ctx, change)
	return nil
}

func (c *Collection[T, K]) read(ctx context.Context, project func([]T) []T) ([]T, error) {
	c.mu.RLock()
	if c.loaded {
		defer c.mu.RUnlock()
		return project(c.items), nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}
	return project(c.items), nil
}

func (c *Collection[T, K]) ensureLoadedLocked(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	return c.loadLocked(ctx)
}

func (c *Collection[T, K]) loadLocked(ctx context.Context) error {
	raw, err := c.backend.Get(ctx, c.opts.Slot)
	if errors.Is(err, slot.ErrNotFound) {
		items, err := c.fixture()
		if err != nil {
			return err
		}
		if err := c.persistLocked(ctx, items); err != nil {
			return err
		}
		c.loaded = true
		c.opts.Logger.Debug("slot seeded from fixture",
			zap.String("slot", string(c.opts.Slot)), zap.Int("records", len(items)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("read slot %s: %w", c.opts.Slot, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		if !c.opts.FallbackOnCorrupt {
			return fmt.Errorf("%w: %s: %v", ErrCorruptSlot, c.opts.Slot, err)
		}
		c.opts.Logger.Warn("slot content corrupt, falling back to fixture",
			zap.String("slot", string(c.opts.Slot)), zap.Error(err))
		if items, err = c.fixture(); err != nil {
			return err
		}
	}
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.loaded = true
	return nil
}

func (c *Collection[T, K]) fixture() ([]T, error) {
	if c.opts.Fixture == nil {
		return []T{}, nil
	}
	items, err := c.opts.Fixture()
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", c.opts.Slot, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// persistLocked 先寫 slot，成功才替換記憶體中的列表
func (c *Collection[T, K]) persistLocked(ctx context.Context, next []T) error {
	if next == nil {
		next = []T{}
	}
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", c.opts.Slot, err)
	}
	if err := c.backend.Set(ctx, c.opts.Slot, raw); err != nil {
		return fmt.Errorf("write slot %s: %w", c.opts.Slot, err)
	}
	c.items = next
	return nil
}

func (c *Collection[T, K]) keysLocked() []K {
	keys := make([]K, len(c.items))
	for i, item := range c.items {
		keys[i] = c.opts.KeyOf(item)
	}
	return keys
}

func (c *Collection[T, K]) indexLocked(key K) int {
	for i, item := range c.items {
		if c.opts.KeyOf(item) == key {
			return i
		}
	}
	return -1
}

func (c *Collection[T, K]) changeLocked(op Op, key string) Change {
	return Change{Slot: c.opts.Slot, Op: op, Key: key, Records: len(c.items)}
}

func (c *Collection[T, K]) notify(ctx context.Context, change Change) {
	c.mu.RLock()
	observers := slices.Clone(c.observers)
	c.mu.RUnlock()
	for _, o := range observers {
		o.StoreChanged(ctx, change)
	}
}
