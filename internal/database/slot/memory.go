package slot

import (
	"context"
	"sort"
	"sync"

	"hrdesk/internal/core"
)

// Memory 行程內後端，測試與 STORAGE__DRIVER=memory 使用
type Memory struct {
	mu     sync.RWMutex
	values map[core.SlotName][]byte
}

func NewMemory() *Memory {
	return &Memory{values: make(map[core.SlotName][]byte)}
}

func (m *Memory) Get(_ context.Context, name core.SlotName) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[name]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Set(_ context.Context, name core.SlotName, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[name] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Delete(_ context.Context, name core.SlotName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, name)
	return nil
}

func (m *Memory) Names(_ context.Context) ([]core.SlotName, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]core.SlotName, 0, len(m.values))
	for name := range m.values {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names, nil
}

func (m *Memory) Driver() core.StorageDriver { return core.StorageMemory }
