package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Tool metrics
	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	ToolErrors   *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a metrics collector registered on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		startTime: time.Now(),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fileiod_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fileiod_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		ToolCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fileiod_tool_calls_total",
				Help: "Total number of tool invocations",
			},
			[]string{"tool", "status"},
		),
		ToolDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fileiod_tool_duration_seconds",
				Help:    "Tool invocation duration in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"tool"},
		),
		ToolErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fileiod_tool_errors_total",
				Help: "Total number of failed tool invocations",
			},
			[]string{"tool"},
		),
		Uptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "fileiod_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
	}
}

// RecordHTTPRequest records a completed HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}

// RecordToolCall records a completed tool invocation
func (m *Metrics) RecordToolCall(tool, status string, duration time.Duration) {
	m.ToolCalls.WithLabelValues(tool, status).Inc()
	m.ToolDuration.WithLabelValues(tool).Observe(duration.Seconds())
	if status != "ok" {
		m.ToolErrors.WithLabelValues(tool).Inc()
	}
}
