// Package metrics collects Prometheus metrics for the API and the stream worker.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"cleanrecord/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cleanrecord"

// Collector is the Prometheus implementation of service.MetricsRecorder.
type Collector struct {
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	bookingEvents *prometheus.CounterVec
	streamStatus  *prometheus.CounterVec
	breakerState  *prometheus.GaugeVec
	streamEvents  *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_events_total",
			Help:      "Booking changes by event type.",
		}, []string{"type"}),
		streamStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stream_status_checks_total",
			Help:      "Live input status checks by reported state.",
		}, []string{"state"}),
		breakerState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0 closed, 1 half-open, 2 open).",
		}, []string{"name"}),
		streamEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stream_events_total",
			Help:      "Stream lifecycle events handled by the worker.",
		}, []string{"type", "outcome"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.bookingEvents,
		c.streamStatus,
		c.breakerState,
		c.streamEvents,
	)

	return c
}

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

func (c *Collector) RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordBookingEvent(eventType string) {
	c.bookingEvents.WithLabelValues(eventType).Inc()
}

func (c *Collector) RecordStreamStatus(state string) {
	c.streamStatus.WithLabelValues(state).Inc()
}

func (c *Collector) RecordBreakerState(name string, state int) {
	c.breakerState.WithLabelValues(name).Set(float64(state))
}

func (c *Collector) RecordStreamEvent(eventType, outcome string) {
	c.streamEvents.WithLabelValues(eventType, outcome).Inc()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

var (
	_ service.MetricsRecorder = (*Collector)(nil)
	_ service.MetricsRecorder = Noop{}
)

// Noop discards every measurement.
type Noop struct{}

func (Noop) RecordHTTPRequest(string, string, int, time.Duration) {}
func (Noop) RecordBookingEvent(string)                            {}
func (Noop) RecordStreamStatus(string)                            {}
func (Noop) RecordBreakerState(string, int)                       {}
func (Noop) RecordStreamEvent(string, string)                     {}
