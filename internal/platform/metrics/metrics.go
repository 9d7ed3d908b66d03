package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tiene su propio registry: varios routers en el mismo proceso
// (tests) no chocan por registros duplicados.
// Todos los métodos aceptan receptor nil.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	adoptionsCreated prometheus.Counter
	adoptionsReject  *prometheus.CounterVec
	careEvents       prometheus.Counter
	uploads          *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		adoptionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "adoptions_created_total",
			Help: "Adoptions successfully recorded.",
		}),
		adoptionsReject: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "adoptions_rejected_total",
			Help: "Adoption requests rejected, by reason.",
		}, []string{"reason"}),
		careEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "care_events_created_total",
			Help: "Care-history events appended.",
		}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "uploads_total",
			Help: "Image uploads to the object store, by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.adoptionsCreated,
		m.adoptionsReject,
		m.careEvents,
		m.uploads,
	)
	return m
}

// Handler expone /metrics.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) AdoptionCreated() {
	if m == nil {
		return
	}
	m.adoptionsCreated.Inc()
}

// AdoptionRejected: reason es not_found, invalid_state o conflict.
func (m *Metrics) AdoptionRejected(reason string) {
	if m == nil {
		return
	}
	m.adoptionsReject.WithLabelValues(reason).Inc()
}

func (m *Metrics) CareEventCreated() {
	if m == nil {
		return
	}
	m.careEvents.Inc()
}

func (m *Metrics) Upload(ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	m.uploads.WithLabelValues(result).Inc()
}
