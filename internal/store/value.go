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

type ValueOptions[T any] struct {
	Slot core.SlotName
	// Default slot 不存在時回傳的值，不會寫回 slot
	Default           func() T
	FallbackOnCorrupt bool
	Logger            *zap.Logger
}

// Value 單一值的 slot，例如設定、登入狀態、文件表
type Value[T any] struct {
	mu        sync.RWMutex
	backend   slot.Backend
	opts      ValueOptions[T]
	value     T
	loaded    bool
	observers []Observer
}

func NewValue[T any](backend slot.Backend, opts ValueOptions[T]) *Value[T] {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Value[T]{backend: backend, opts: opts}
}

func (v *Value[T]) Slot() core.SlotName { return v.opts.Slot }

func (v *Value[T]) Subscribe(o Observer) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.observers = append(v.observers, o)
}

func (v *Value[T]) Load(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loadLocked(ctx)
}

func (v *Value[T]) Reload(ctx context.Context) error {
	v.mu.Lock()
	if err := v.loadLocked(ctx); err != nil {
		v.mu.Unlock()
		return err
	}
	v.mu.Unlock()

	v.notify(ctx, OpReload)
	return nil
}

// Reset 刪除 slot，回到預設值
func (v *Value[T]) Reset(ctx context.Context) error {
	return v.clear(ctx, OpReset)
}

// Clear 刪除 slot，回到預設值
func (v *Value[T]) Clear(ctx context.Context) error {
	return v.clear(ctx, OpDelete)
}

// Get 回傳副本，呼叫端修改 map/slice 不會影響狀態
func (v *Value[T]) Get(ctx context.Context) (T, error) {
	v.mu.RLock()
	if v.loaded {
		current := v.value
		v.mu.RUnlock()
		return clone(current)
	}
	v.mu.RUnlock()

	v.mu.Lock()
	if err := v.ensureLoadedLocked(ctx); err != nil {
		v.mu.Unlock()
		var zero T
		return zero, err
	}
	current := v.value
	v.mu.Unlock()
	return clone(current)
}

func (v *Value[T]) Set(ctx context.Context, value T) error {
	v.mu.Lock()
	if err := v.persistLocked(ctx, value); err != nil {
		v.mu.Unlock()
		return err
	}
	v.loaded = true
	v.mu.Unlock()

	v.notify(ctx, OpUpdate)
	return nil
}

// Update 在副本上套用 mutate 後寫回；mutate 回傳錯誤時不寫入
func (v *Value[T]) Update(ctx context.Context, mutate func(*T) error) (T, error) {
	var zero T
	v.mu.Lock()
	if err := v.ensureLoadedLocked(ctx); err != nil {
		v.mu.Unlock()
		return zero, err
	}
	next, err := clone(v.value)
	if err != nil {
		v.mu.Unlock()
		return zero, err
	}
	if err := mutate(&next); err != nil {
		v.mu.Unlock()
		return zero, err
	}
	if err := v.persistLocked(ctx, next); err != nil {
		v.mu.Unlock()
		return zero, err
	}
	v.mu.Unlock()

	v.notify(ctx, OpUpdate)
	return clone(next)
}

func (v *Value[T]) Snapshot(ctx context.Context) (any, error) {
	return v.Get(ctx)
}

func (v *Value[T]) clear(ctx context.Context, op Op) error {
	v.mu.Lock()
	if err := v.backend.Delete(ctx, v.opts.Slot); err != nil {
		v.mu.Unlock()
		return fmt.Errorf("delete slot %s: %w", v.opts.Slot, err)
	}
	v.value = v.defaultValue()
	v.loaded = true
	v.mu.Unlock()

	v.notify(ctx, op)
	return nil
}

func (v *Value[T]) ensureLoadedLocked(ctx context.Context) error {
	if v.loaded {
		return nil
	}
	return v.loadLocked(ctx)
}

func (v *Value[T]) loadLocked(ctx context.Context) error {
	raw, err := v.backend.Get(ctx, v.opts.Slot)
	if errors.Is(err, slot.ErrNotFound) {
		v.value = v.defaultValue()
		v.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("read slot %s: %w", v.opts.Slot, err)
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		if !v.opts.FallbackOnCorrupt {
			return fmt.Errorf("%w: %s: %v", ErrCorruptSlot, v.opts.Slot, err)
		}
		v.opts.Logger.Warn("slot content corrupt, falling back to default",
			zap.String("slot", string(v.opts.Slot)), zap.Error(err))
		value = v.defaultValue()
	}
	v.value = value
	v.loaded = true
	return nil
}

func (v *Value[T]) persistLocked(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", v.opts.Slot, err)
	}
	if err := v.backend.Set(ctx, v.opts.Slot, raw); err != nil {
		return fmt.Errorf("write slot %s: %w", v.opts.Slot, err)
	}
	v.value = value
	return nil
}

func (v *Value[T]) defaultValue() T {
	if v.opts.Default == nil {
		var zero T
		return zero
	}
	return v.opts.Default()
}

func (v *Value[T]) notify(ctx context.Context, op Op) {
	v.mu.RLock()
	observers := slices.Clone(v.observers)
	v.mu.RUnlock()
	change := Change{Slot: v.opts.Slot, Op: op, Records: 1}
	for _, o := range observers {
		o.StoreChanged(ctx, change)
	}
}
