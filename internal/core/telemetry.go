package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanHttpRequest        TraceSpanName = "http_request"
	SpanLoggerMiddleware   TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware     TraceSpanName = "cors_middleware"
	SpanResponseMiddleware TraceSpanName = "response_middleware"
	SpanSessionMiddleware  TraceSpanName = "session_middleware"
	SpanSlotRead           TraceSpanName = "slot_read"
	SpanSlotWrite          TraceSpanName = "slot_write"
	SpanResyncJob          TraceSpanName = "store_resync_job"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal   MetricName = "requests_total"
	MetricHttpRequestDuration MetricName = "request_duration_seconds"
	MetricResponseTotal       MetricName = "response_total"
	MetricErrorTotal          MetricName = "error_total"
	MetricStoreMutationsTotal MetricName = "store_mutations_total"
	MetricSlotWriteFailTotal  MetricName = "slot_write_fail_total"
	MetricStoreRecords        MetricName = "store_records"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelReason   MetricLabelName = "reason"
	MetricLabelSlot     MetricLabelName = "slot"
	MetricLabelOp       MetricLabelName = "op"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

// 列表查詢（search / filter）用
type TraceListMeta struct {
	Resource    string         `trace:"list.resource"`
	Search      string         `trace:"list.search,omitempty"`
	Filter      map[string]any `trace:"filter,omitempty"`
	ResultCount int            `trace:"result.count"`
	TotalCount  int            `trace:"result.total"`
}

// 單筆 store 操作
type TraceStoreMeta struct {
	Slot  string `trace:"store.slot"`
	Op    string `trace:"store.op"`
	Key   string `trace:"store.key,omitempty"`
	Found bool   `trace:"store.found"`
	Count int    `trace:"store.count,omitempty"`
}

// slot 讀寫
type TraceSlotMeta struct {
	Slot    string `trace:"slot.name"`
	Driver  string `trace:"slot.driver"`
	Op      string `trace:"slot.op"` // "get" / "set" / "delete"
	Bytes   int    `trace:"slot.bytes,omitempty"`
	Missing bool   `trace:"slot.missing"`
}

type TraceSessionMiddlewareMeta struct {
	Email  string `trace:"auth.email,omitempty"`
	Status string `trace:"auth.status"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

type TraceHttpServerMeta struct {
	// request side
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanKind          string `trace:"span.kind"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}
