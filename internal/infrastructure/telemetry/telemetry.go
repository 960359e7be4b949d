package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const namespace = "catalog"

var registry *prometheus.Registry

type Counter interface {
	Inc()
	Add(float64)
}

type Histogram interface {
	Observe(float64)
}

type Gauge interface {
	Set(float64)
}

type CounterVec interface {
	With(labels ...string) Counter
}

type HistogramVec interface {
	With(labels ...string) Histogram
}

// NoopStat is used until Initialize registers real collectors.
type NoopStat struct{}

func (NoopStat) Inc()            {}
func (NoopStat) Add(float64)     {}
func (NoopStat) Observe(float64) {}
func (NoopStat) Set(float64)     {}

type noopCounterVec struct{}
type noopHistogramVec struct{}

func (noopCounterVec) With(...string) Counter     { return NoopStat{} }
func (noopHistogramVec) With(...string) Histogram { return NoopStat{} }

type prometheusCounterVec struct {
	vec *prometheus.CounterVec
}

func (p *prometheusCounterVec) With(labelValues ...string) Counter {
	return p.vec.WithLabelValues(labelValues...)
}

type prometheusHistogramVec struct {
	vec *prometheus.HistogramVec
}

func (p *prometheusHistogramVec) With(labelValues ...string) Histogram {
	return p.vec.WithLabelValues(labelValues...)
}

var (
	// HTTPRequestsTotal counts requests by method, route and status
	HTTPRequestsTotal CounterVec = noopCounterVec{}

	// HTTPRequestDurationSeconds measures request latency by method and route
	HTTPRequestDurationSeconds HistogramVec = noopHistogramVec{}

	// PublisherOperationsTotal counts publisher operations by op and result
	PublisherOperationsTotal CounterVec = noopCounterVec{}

	// DBPoolAcquiredConns tracks acquired pgx pool connections
	DBPoolAcquiredConns Gauge = NoopStat{}
)

func NewCounterVec(subsystem, name, help string, labels []string) CounterVec {
	if registry == nil {
		return noopCounterVec{}
	}

	ret := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labels)

	registry.MustRegister(ret)
	return &prometheusCounterVec{vec: ret}
}

func NewHistogramVec(subsystem, name, help string, buckets []float64, labels []string) HistogramVec {
	if registry == nil {
		return noopHistogramVec{}
	}

	ret := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}, labels)

	registry.MustRegister(ret)
	return &prometheusHistogramVec{vec: ret}
}

func NewGauge(subsystem, name, help string) Gauge {
	if registry == nil {
		return NoopStat{}
	}

	ret := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	})

	registry.MustRegister(ret)
	return ret
}

// Initialize creates the registry and replaces the noop metrics.
// Calling it with enabled=false keeps every metric a noop.
func Initialize(enabled bool) {
	if !enabled || registry != nil {
		return
	}

	registry = prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	HTTPRequestsTotal = NewCounterVec("http", "requests_total", "HTTP requests by method, route and status", []string{"method", "route", "status"})
	HTTPRequestDurationSeconds = NewHistogramVec("http", "request_duration_seconds", "HTTP request latency", prometheus.DefBuckets, []string{"method", "route"})
	PublisherOperationsTotal = NewCounterVec("publisher", "operations_total", "Publisher operations by op and result", []string{"op", "result"})
	DBPoolAcquiredConns = NewGauge("db", "pool_acquired_conns", "Acquired connections in the pgx pool")

	log.Info().Msg("Prometheus metrics enabled at /metrics")
}

// Handler returns the HTTP handler for Prometheus metrics, nil when disabled
func Handler() http.Handler {
	if registry == nil {
		return nil
	}
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}
