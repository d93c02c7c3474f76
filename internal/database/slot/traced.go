package slot

import (
	"context"
	"errors"

	"hrdesk/internal/core"
	"hrdesk/internal/telemetry"
)

// Traced 每次 slot 讀寫開一個 span，寫入失敗計入 metric
type Traced struct {
	Backend
	trace  *telemetry.Trace
	metric *telemetry.Metric
}

func NewTraced(inner Backend, trace *telemetry.Trace, metric *telemetry.Metric) *Traced {
	return &Traced{Backend: inner, trace: trace, metric: metric}
}

func (t *Traced) Get(ctx context.Context, name core.SlotName) (value []byte, err error) {
	ctx, span, end := t.trace.WithSpan(ctx, string(core.SpanSlotRead))
	defer func() {
		if errors.Is(err, ErrNotFound) {
			end(nil)
			return
		}
		end(err)
	}()

	value, err = t.Backend.Get(ctx, name)
	t.trace.ApplyTraceAttributes(span, core.TraceSlotMeta{
		Slot:    string(name),
		Driver:  string(t.Driver()),
		Op:      "get",
		Bytes:   len(value),
		Missing: errors.Is(err, ErrNotFound),
	})
	return value, err
}

func (t *Traced) Set(ctx context.Context, name core.SlotName, value []byte) (err error) {
	ctx, span, end := t.trace.WithSpan(ctx, string(core.SpanSlotWrite))
	defer func() { end(err) }()

	t.trace.ApplyTraceAttributes(span, core.TraceSlotMeta{
		Slot:   string(name),
		Driver: string(t.Driver()),
		Op:     "set",
		Bytes:  len(value),
	})
	if err = t.Backend.Set(ctx, name, value); err != nil {
		t.metric.IncSlotWriteFail(name)
	}
	return err
}

func (t *Traced) Delete(ctx context.Context, name core.SlotName) (err error) {
	ctx, span, end := t.trace.WithSpan(ctx, string(core.SpanSlotWrite))
	defer func() { end(err) }()

	t.trace.ApplyTraceAttributes(span, core.TraceSlotMeta{
		Slot:   string(name),
		Driver: string(t.Driver()),
		Op:     "delete",
	})
	if err = t.Backend.Delete(ctx, name); err != nil {
		t.metric.IncSlotWriteFail(name)
	}
	return err
}
