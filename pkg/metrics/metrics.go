package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
)

const namespace = "eda_mcp"

// Outcome labels of the recorded calls.
const (
	OutcomeSuccess         = "success"
	OutcomeNotFound        = "not_found"
	OutcomeInvalidArgument = "invalid_argument"
	OutcomeInternal        = "internal"
	OutcomeToolError       = "tool_error"
)

// Collector exposes MCP call statistics on a dedicated Prometheus registry.
type Collector struct {
	registry         *prometheus.Registry
	toolCalls        *prometheus.CounterVec
	toolDuration     *prometheus.HistogramVec
	resourceReads    *prometheus.CounterVec
	resourceDuration *prometheus.HistogramVec
	promptGets       *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		toolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_calls_total",
			Help:      "Number of MCP tool calls by tool and outcome.",
		}, []string{"tool", "outcome"}),
		toolDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tool_call_duration_seconds",
			Help:      "Duration of MCP tool calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"tool"}),
		resourceReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resource_reads_total",
			Help:      "Number of MCP resource reads by resource class and outcome.",
		}, []string{"class", "outcome"}),
		resourceDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "resource_read_duration_seconds",
			Help:      "Duration of MCP resource reads.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"class"}),
		promptGets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prompt_gets_total",
			Help:      "Number of MCP prompt fetches by prompt and outcome.",
		}, []string{"prompt", "outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests by method, path and status code.",
		}, []string{"method", "path", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.toolCalls, c.toolDuration,
		c.resourceReads, c.resourceDuration,
		c.promptGets,
		c.httpRequests, c.httpDuration,
	)
	return c
}

// Outcome classifies a call result for the outcome label.
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	switch api.KindOf(err) {
	case api.ErrorKindNotFound:
		return OutcomeNotFound
	case api.ErrorKindInvalidArgument:
		return OutcomeInvalidArgument
	default:
		return OutcomeInternal
	}
}

func (c *Collector) RecordToolCall(name string, duration time.Duration, outcome string) {
	c.toolCalls.WithLabelValues(name, outcome).Inc()
	c.toolDuration.WithLabelValues(name).Observe(duration.Seconds())
}

// RecordResourceRead records a read. class is a bounded label such as the EDA category or "cluster".
func (c *Collector) RecordResourceRead(class string, duration time.Duration, err error) {
	c.resourceReads.WithLabelValues(class, Outcome(err)).Inc()
	c.resourceDuration.WithLabelValues(class).Observe(duration.Seconds())
}

func (c *Collector) RecordPromptGet(name string, err error) {
	c.promptGets.WithLabelValues(name, Outcome(err)).Inc()
}

func (c *Collector) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
