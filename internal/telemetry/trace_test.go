package telemetry

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"hrdesk/internal/core"

	"go.opentelemetry.io/otel/attribute"
)

func TestShortFuncName(t *testing.T) {
	cases := map[string]string{
		"hrdesk/internal/service.(*EmployeeService).List":    "EmployeeService.List",
		"hrdesk/internal/handler.(*EmployeeHandler).List-fm": "EmployeeHandler.List",
		"hrdesk/internal/store.(*Collection[...]).Create":    "Collection.Create",
		"hrdesk/internal/cron.(*Cron).Run.func1":             "Cron.Run",
		"":                                                   "unknown",
	}
	for in, want := range cases {
		if got := shortFuncName(in); got != want {
			t.Errorf("shortFuncName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCollectAttributes(t *testing.T) {
	attrs := collectAttributes(reflect.ValueOf(core.TraceListMeta{
		Resource:    "employees",
		Filter:      map[string]any{"status": "active"},
		ResultCount: 2,
		TotalCount:  6,
	}))

	got := map[attribute.Key]attribute.Value{}
	for _, kv := range attrs {
		got[kv.Key] = kv.Value
	}
	if got["list.resource"].AsString() != "employees" {
		t.Fatalf("list.resource = %v", got["list.resource"])
	}
	if _, ok := got["list.search"]; ok {
		t.Fatal("omitempty search should be skipped")
	}
	if got["filter.status"].AsString() != "active" {
		t.Fatalf("filter.status = %v", got["filter.status"])
	}
	if got["result.count"].AsInt64() != 2 || got["result.total"].AsInt64() != 6 {
		t.Fatalf("counts = %v %v", got["result.count"], got["result.total"])
	}
}

func TestWithSpanDisabledIsNoop(t *testing.T) {
	tr := &Trace{}
	ctx, span, end := tr.WithSpan(context.Background())
	if ctx == nil || span == nil {
		t.Fatal("expected ctx and span")
	}
	tr.ApplyTraceAttributes(span, core.TraceStoreMeta{Slot: "employees-data", Op: "create"})
	end(errors.New("boom"))
	end(nil)
	if err := tr.Shutdown(context.Background()); err != nil {
		t.Fatal(err)
	}
}
