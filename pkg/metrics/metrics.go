package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors of the service.
type Metrics struct {
	// HTTPRequestsTotal is the number of handled HTTP requests.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration is the request latency.
	HTTPRequestDuration *prometheus.HistogramVec

	// DBQueryDuration is the latency of SQL statements by operation.
	DBQueryDuration *prometheus.HistogramVec

	// DBQueryErrors is the number of failed SQL statements by operation.
	DBQueryErrors *prometheus.CounterVec

	// DBOpenConnections tracks sql.DBStats.OpenConnections.
	DBOpenConnections prometheus.Gauge

	// DBInUseConnections tracks sql.DBStats.InUse.
	DBInUseConnections prometheus.Gauge

	// OrdersCreatedTotal counts created orders by order type.
	OrdersCreatedTotal *prometheus.CounterVec

	// PreorderRejectionsTotal counts pre-order selections rejected by validation.
	PreorderRejectionsTotal *prometheus.CounterVec

	// ScheduleCacheRequests counts schedule cache lookups by result (hit/miss/error).
	ScheduleCacheRequests *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре
func New(namespace string) *Metrics {
	return NewWithRegistry(namespace, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном реестре (удобно для тестов)
func NewWithRegistry(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "db_query_duration_seconds",
				Help:      "SQL statement latency",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"operation"},
		),

		DBQueryErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "db_query_errors_total",
				Help:      "Total number of failed SQL statements",
			},
			[]string{"operation"},
		),

		DBOpenConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "db_open_connections",
				Help:      "Number of established connections",
			},
		),

		DBInUseConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "db_in_use_connections",
				Help:      "Number of connections currently in use",
			},
		),

		OrdersCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orders_created_total",
				Help:      "Total number of created orders",
			},
			[]string{"order_type"},
		),

		PreorderRejectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "preorder_rejections_total",
				Help:      "Total number of rejected pre-order selections",
			},
			[]string{"field"},
		),

		ScheduleCacheRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "schedule_cache_requests_total",
				Help:      "Pre-order schedule cache lookups",
			},
			[]string{"result"},
		),
	}
}

// IncOrderCreated безопасен для nil-получателя (метрики выключены)
func (m *Metrics) IncOrderCreated(orderType string) {
	if m == nil {
		return
	}
	m.OrdersCreatedTotal.WithLabelValues(orderType).Inc()
}

// IncPreorderRejection безопасен для nil-получателя
func (m *Metrics) IncPreorderRejection(field string) {
	if m == nil {
		return
	}
	m.PreorderRejectionsTotal.WithLabelValues(field).Inc()
}

// IncScheduleCache безопасен для nil-получателя
func (m *Metrics) IncScheduleCache(result string) {
	if m == nil {
		return
	}
	m.ScheduleCacheRequests.WithLabelValues(result).Inc()
}
