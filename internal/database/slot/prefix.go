package slot

import (
	"context"
	"strings"

	"hrdesk/internal/core"
)

// Prefixed 多個環境共用同一個後端時，用前綴隔開 slot 名稱
type Prefixed struct {
	Backend
	prefix string
}

func NewPrefixed(inner Backend, prefix string) Backend {
	if prefix == "" {
		return inner
	}
	return &Prefixed{Backend: inner, prefix: prefix + ":"}
}

func (p *Prefixed) key(name core.SlotName) core.SlotName {
	return core.SlotName(p.prefix + string(name))
}

func (p *Prefixed) Get(ctx context.Context, name core.SlotName) ([]byte, error) {
	return p.Backend.Get(ctx, p.key(name))
}

func (p *Prefixed) Set(ctx context.Context, name core.SlotName, value []byte) error {
	return p.Backend.Set(ctx, p.key(name), value)
}

func (p *Prefixed) Delete(ctx context.Context, name core.SlotName) error {
	return p.Backend.Delete(ctx, p.key(name))
}

func (p *Prefixed) Names(ctx context.Context) ([]core.SlotName, error) {
	all, err := p.Backend.Names(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]core.SlotName, 0, len(all))
	for _, n := range all {
		if rest, ok := strings.CutPrefix(string(n), p.prefix); ok {
			names = append(names, core.SlotName(rest))
		}
	}
	return names, nil
}
