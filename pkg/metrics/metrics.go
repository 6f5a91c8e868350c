// Package metrics exposes Prometheus counters for the API and the content store.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what handlers and use cases depend on.
type Recorder interface {
	RecordHTTPStatus(statusCode int)
	RecordRequestLatency(duration time.Duration)
	RecordContentWrite(section, action string)
	RecordStorageFailure(op string)
}

type Collector struct {
	httpStatus      *prometheus.CounterVec
	requestLatency  prometheus.Histogram
	contentWrites   *prometheus.CounterVec
	storageFailures *prometheus.CounterVec
}

// NewCollector registers all metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_cms_http_status_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "portfolio_cms_request_latency_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		contentWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_cms_content_writes_total",
			Help: "Successful content writes by section and action.",
		}, []string{"section", "action"}),
		storageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_cms_storage_failures_total",
			Help: "Document store failures by operation.",
		}, []string{"op"}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.requestLatency,
		c.contentWrites,
		c.storageFailures,
	)

	return c
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordRequestLatency(duration time.Duration) {
	c.requestLatency.Observe(duration.Seconds())
}

func (c *Collector) RecordContentWrite(section, action string) {
	c.contentWrites.WithLabelValues(section, action).Inc()
}

func (c *Collector) RecordStorageFailure(op string) {
	c.storageFailures.WithLabelValues(op).Inc()
}

// Handler serves the scrape endpoint for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop drops every observation.
type Nop struct{}

func (Nop) RecordHTTPStatus(int) {}
func (Nop) RecordRequestLatency(time.Duration) {}
func (Nop) RecordContentWrite(string, string) {}
func (Nop) RecordStorageFailure(string) {}
