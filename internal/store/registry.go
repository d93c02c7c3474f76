package store

import (
	"context"
	"errors"
	"fmt"

	"hrdesk/internal/core"

	"go.uber.org/zap"
)

// Member Collection 與 Value 共同的生命週期操作
type Member interface {
	Slot() core.SlotName
	Load(ctx context.Context) error
	Reload(ctx context.Context) error
	Reset(ctx context.Context) error
	Snapshot(ctx context.Context) (any, error)
	Subscribe(o Observer)
}

// Registry 擁有所有 store，負責啟動載入、重新同步與重置
type Registry struct {
	members []Member
	index   map[core.SlotName]Member
	logger  *zap.Logger
}

func NewRegistry(logger *zap.Logger, members ...Member) *Registry {
	r := &Registry{index: make(map[core.SlotName]Member, len(members)), logger: logger}
	for _, m := range members {
		r.members = append(r.members, m)
		r.index[m.Slot()] = m
	}
	return r
}

// Names 依註冊順序
func (r *Registry) Names() []core.SlotName {
	names := make([]core.SlotName, len(r.members))
	for i, m := range r.members {
		names[i] = m.Slot()
	}
	return names
}

func (r *Registry) Lookup(name core.SlotName) (Member, bool) {
	m, ok := r.index[name]
	return m, ok
}

func (r *Registry) Subscribe(o Observer) {
	for _, m := range r.members {
		m.Subscribe(o)
	}
}

// LoadAll 任一 slot 失敗仍繼續載入其他 slot，回傳合併後的錯誤
func (r *Registry) LoadAll(ctx context.Context) error {
	var errs []error
	for _, m := range r.members {
		if err := m.Load(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	r.logger.Info("store loaded", zap.Int("slots", len(r.members)))
	return nil
}

func (r *Registry) ReloadAll(ctx context.Context) error {
	var errs []error
	for _, m := range r.members {
		if err := m.Reload(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Reset 沒給名稱時重置全部
func (r *Registry) Reset(ctx context.Context, names ...core.SlotName) error {
	targets := r.members
	if len(names) > 0 {
		targets = make([]Member, 0, len(names))
		for _, name := range names {
			m, ok := r.index[name]
			if !ok {
				return fmt.Errorf("unknown slot %q", name)
			}
			targets = append(targets, m)
		}
	}

	var errs []error
	for _, m := range targets {
		if err := m.Reset(ctx); err != nil {
			errs = append(errs, err)
			continue
		}
		r.logger.Info("slot reset", zap.String("slot", string(m.Slot())))
	}
	return errors.Join(errs...)
}

func (r *Registry) Snapshot(ctx context.Context) (map[core.SlotName]any, error) {
	out := make(map[core.SlotName]any, len(r.members))
	for _, m := range r.members {
		v, err := m.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		out[m.Slot()] = v
	}
	return out, nil
}
