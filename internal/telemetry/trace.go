package telemetry

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"time"

	"hrdesk/config"
	"hrdesk/internal/core"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Trace 關閉時 TracerProvider 為 nil，所有 span 都是 noop
type Trace struct {
	TracerProvider *sdktrace.TracerProvider
	ServiceName    string
}

func NewTrace(conf *config.Configuration) (*Trace, error) {
	if conf == nil || !conf.Telemetry.Trace.Enabled {
		return &Trace{}, nil
	}
	exporter, err := otlptracehttp.New(context.Background(),
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithEndpointURL(conf.Telemetry.Trace.EndpointUrl),
		otlptracehttp.WithRetry(otlptracehttp.RetryConfig{
			Enabled:         true,
			InitialInterval: 5 * time.Second,
			MaxInterval:     10 * time.Second,
			MaxElapsedTime:  60 * time.Second, // 超過就丟棄
		}),
		otlptracehttp.WithTimeout(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	sampler := sdktrace.AlwaysSample()
	if ratio := conf.Telemetry.Trace.SampleRatio; ratio > 0 && ratio < 1 {
		sampler = sdktrace.TraceIDRatioBased(ratio)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sampler)),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(conf.App.Name),
			semconv.ServiceVersion(conf.App.Version),
			semconv.DeploymentEnvironmentName(conf.App.Env),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return &Trace{TracerProvider: tp, ServiceName: conf.App.Name}, nil
}

// Shutdown flush 尚未送出的 span
func (t *Trace) Shutdown(ctx context.Context) error {
	if t == nil || t.TracerProvider == nil {
		return nil
	}
	return t.TracerProvider.Shutdown(ctx)
}

func (t *Trace) tracer() trace.Tracer {
	if t == nil || t.TracerProvider == nil {
		return noop.NewTracerProvider().Tracer("noop")
	}
	return t.TracerProvider.Tracer(t.ServiceName)
}

func (t *Trace) StartSpan(ctx context.Context, spanName core.TraceSpanName, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer().Start(ctx, string(spanName), opts...)
}

// WithSpan handler 傳 *gin.Context（父 ctx 取自 ContextTraceKey），service/store 傳 context.Context。
// 沒給名稱時 handler 用 handler 名稱，其餘用呼叫者的方法名稱。
func (t *Trace) WithSpan(parent any, name ...string) (context.Context, trace.Span, func(error)) {
	override := ""
	if len(name) > 0 {
		override = strings.TrimSpace(name[0])
	}

	var ctx context.Context
	var span trace.Span
	switch p := parent.(type) {
	case *gin.Context:
		n := override
		if n == "" {
			n = spanNameFromGin(p)
		}
		ctx, span = t.StartSpan(t.GetTraceContext(p), core.TraceSpanName(n))
		p.Set(core.ContextTraceKey, ctx)
	case context.Context:
		n := override
		if n == "" {
			n = shortFuncName(callerFuncName(2))
		}
		ctx, span = t.StartSpan(p, core.TraceSpanName(n))
	default:
		n := override
		if n == "" {
			n = "unknown"
		}
		ctx, span = t.StartSpan(context.Background(), core.TraceSpanName(n))
	}

	ended := false
	return ctx, span, func(err error) {
		// handler 常見 end(err) 後又 defer end(nil)
		if ended {
			return
		}
		ended = true
		t.EndSpan(span, err)
	}
}

// EndSpan 有錯誤時標記 span 狀態
func (t *Trace) EndSpan(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// GetTraceContext 取得 middleware 鏈上最新的 ctx
func (t *Trace) GetTraceContext(c *gin.Context) context.Context {
	if v, ok := c.Get(core.ContextTraceKey); ok {
		if ctx, ok := v.(context.Context); ok {
			return ctx
		}
	}
	return c.Request.Context()
}

// ApplyTraceAttributes 依 `trace:"key[,omitempty]"` tag 把 struct 欄位寫成 span attribute
func (t *Trace) ApplyTraceAttributes(span trace.Span, obj any) {
	if span == nil || obj == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			span.RecordError(fmt.Errorf("apply trace attributes: %v", r))
		}
	}()
	if attrs := collectAttributes(reflect.ValueOf(obj)); len(attrs) > 0 {
		span.SetAttributes(attrs...)
	}
}

func collectAttributes(val reflect.Value) []attribute.KeyValue {
	for val.Kind() == reflect.Ptr || val.Kind() == reflect.Interface {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	var attrs []attribute.KeyValue
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := val.Field(i)
		if !typ.Field(i).IsExported() {
			continue
		}
		key, omitEmpty := parseTraceTag(typ.Field(i).Tag.Get("trace"))
		if key == "" {
			// 沒 tag 的內嵌 struct 攤平
			if typ.Field(i).Anonymous {
				attrs = append(attrs, collectAttributes(field)...)
			}
			continue
		}
		if omitEmpty && field.IsZero() {
			continue
		}
		attrs = append(attrs, attributeOf(key, field)...)
	}
	return attrs
}

func attributeOf(key string, v reflect.Value) []attribute.KeyValue {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.String:
		return []attribute.KeyValue{attribute.String(key, v.String())}
	case reflect.Bool:
		return []attribute.KeyValue{attribute.Bool(key, v.Bool())}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return []attribute.KeyValue{attribute.Int64(key, v.Int())}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return []attribute.KeyValue{attribute.Int64(key, int64(v.Uint()))}
	case reflect.Float32, reflect.Float64:
		return []attribute.KeyValue{attribute.Float64(key, v.Float())}
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() != reflect.String {
			return nil
		}
		strs := make([]string, v.Len())
		for j := range strs {
			strs[j] = v.Index(j).String()
		}
		return []attribute.KeyValue{attribute.StringSlice(key, strs)}
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil
		}
		var attrs []attribute.KeyValue
		iter := v.MapRange()
		for iter.Next() {
			attrs = append(attrs, attributeOf(key+"."+iter.Key().String(), iter.Value())...)
		}
		return attrs
	case reflect.Struct, reflect.Ptr:
		return collectAttributes(v)
	}
	return nil
}

func parseTraceTag(raw string) (string, bool) {
	name, opts, _ := strings.Cut(raw, ",")
	return name, opts == "omitempty"
}

// shortFuncName "hrdesk/internal/service.(*EmployeeService).List" -> "EmployeeService.List"
func shortFuncName(full string) string {
	if full == "" {
		return "unknown"
	}
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	full = strings.TrimSuffix(full, "-fm")
	if i := strings.Index(full, ".func"); i >= 0 {
		full = full[:i]
	}
	if i := strings.Index(full, "."); i >= 0 {
		full = full[i+1:]
	}
	full = strings.NewReplacer("(*", "", "(", "", ")", "").Replace(full)
	// 泛型型參只留名稱
	if i := strings.Index(full, "["); i >= 0 {
		if j := strings.Index(full[i:], "]"); j >= 0 {
			full = full[:i] + full[i+j+1:]
		}
	}
	return full
}

func spanNameFromGin(c *gin.Context) string {
	if hn := c.HandlerName(); hn != "" {
		return shortFuncName(hn)
	}
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	return c.Request.Method + " " + route
}

func callerFuncName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fn.Name()
	}
	return ""
}
