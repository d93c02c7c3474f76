package telemetry

import (
	"strconv"
	"time"

	"hrdesk/config"
	"hrdesk/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric struct；未啟用時所有 vector 為 nil，方法皆為 no-op
type Metric struct {
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec
	ResponseTotal       *prometheus.CounterVec
	ErrorTotal          *prometheus.CounterVec
	StoreMutationsTotal *prometheus.CounterVec
	SlotWriteFailTotal  *prometheus.CounterVec
	StoreRecords        *prometheus.GaugeVec
	config              *config.Configuration
}

// NewMetric 建立所有指標
func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	prefix := config.App.Name + "_"
	return &Metric{
		config: config,
		HttpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + string(core.MetricHttpRequestDuration),
				Help:    "API request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		ResponseTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricResponseTotal),
				Help: "Responses rendered by the response middleware",
			},
			labelNames(core.MetricLabelStatus),
		),
		ErrorTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricErrorTotal),
				Help: "Application errors by error code",
			},
			labelNames(core.MetricLabelReason),
		),
		StoreMutationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricStoreMutationsTotal),
				Help: "Committed store mutations",
			},
			labelNames(core.MetricLabelSlot, core.MetricLabelOp),
		),
		SlotWriteFailTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricSlotWriteFailTotal),
				Help: "Slot writes rejected by the backend",
			},
			labelNames(core.MetricLabelSlot),
		),
		StoreRecords: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: prefix + string(core.MetricStoreRecords),
				Help: "Records currently held per slot",
			},
			labelNames(core.MetricLabelSlot),
		),
	}
}

func (m *Metric) ObserveRequest(endpoint string, status int, elapsed time.Duration) {
	if m == nil || m.HttpRequestsTotal == nil {
		return
	}
	m.HttpRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	m.HttpRequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func (m *Metric) IncResponse(status int) {
	if m == nil || m.ResponseTotal == nil {
		return
	}
	m.ResponseTotal.WithLabelValues(strconv.Itoa(status)).Inc()
}

func (m *Metric) IncError(code int) {
	if m == nil || m.ErrorTotal == nil {
		return
	}
	m.ErrorTotal.WithLabelValues(strconv.Itoa(code)).Inc()
}

func (m *Metric) ObserveMutation(slot core.SlotName, op string, records int) {
	if m == nil || m.StoreMutationsTotal == nil {
		return
	}
	m.StoreMutationsTotal.WithLabelValues(string(slot), op).Inc()
	m.StoreRecords.WithLabelValues(string(slot)).Set(float64(records))
}

func (m *Metric) IncSlotWriteFail(slot core.SlotName) {
	if m == nil || m.SlotWriteFailTotal == nil {
		return
	}
	m.SlotWriteFailTotal.WithLabelValues(string(slot)).Inc()
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
