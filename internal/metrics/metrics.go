// Package metrics holds the Prometheus collectors of the API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	Registry            *prometheus.Registry
	UsersRegistered     prometheus.Counter
	BinsCreated         prometheus.Counter
	BinStatusUpdates    prometheus.Counter
	CollectionsRecorded prometheus.Counter
	PaymentsCreated     prometheus.Counter
	ScheduleChanges     *prometheus.CounterVec   // by operation
	DriverChanges       *prometheus.CounterVec   // by operation
	CacheLookups        *prometheus.CounterVec   // by result: hit, miss, error
	HTTPRequests        *prometheus.CounterVec   // by method, route, status
	HTTPDuration        *prometheus.HistogramVec // by method, route
}

// New registers every collector on a private registry.
func New(namespace string) *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		UsersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "users_registered_total",
			Help: "Total number of registered users.",
		}),
		BinsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "bins_created_total",
			Help: "Total number of bins created.",
		}),
		BinStatusUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "bin_status_updates_total",
			Help: "Total number of bin status changes.",
		}),
		CollectionsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "collections_recorded_total",
			Help: "Total number of collection records stored.",
		}),
		PaymentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "payments_created_total",
			Help: "Total number of payments recorded.",
		}),
		ScheduleChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "schedule_changes_total",
			Help: "Schedule writes by operation.",
		}, []string{"operation"}),
		DriverChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "driver_changes_total",
			Help: "Driver writes by operation.",
		}, []string{"operation"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "cache_lookups_total",
			Help: "Aggregation cache lookups by result.",
		}, []string{"result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.Registry.MustRegister(
		m.UsersRegistered,
		m.BinsCreated,
		m.BinStatusUpdates,
		m.CollectionsRecorded,
		m.PaymentsCreated,
		m.ScheduleChanges,
		m.DriverChanges,
		m.CacheLookups,
		m.HTTPRequests,
		m.HTTPDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
