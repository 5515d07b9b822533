package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics коллекторы метрик фронтенда и клиента backend API
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	backendRequestsTotal   *prometheus.CounterVec
	backendRequestDuration *prometheus.HistogramVec

	sessionActive prometheus.Gauge
}

// New создает и регистрирует метрики в собственном registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests served by the frontend",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "Duration of HTTP requests served by the frontend",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		backendRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "backend_requests_total",
				Help:        "Total number of requests sent to the rental backend",
				ConstLabels: constLabels,
			},
			[]string{"operation", "status"},
		),
		backendRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "backend_request_duration_seconds",
				Help:        "Duration of requests sent to the rental backend",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		sessionActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "session_active",
				Help:        "1 if a user session is stored locally, 0 otherwise",
				ConstLabels: constLabels,
			},
		),
	}

	m.registry.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.backendRequestsTotal,
		m.backendRequestDuration,
		m.sessionActive,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler возвращает HTTP handler для экспорта метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry нужен тестам для чтения собранных значений
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest фиксирует обработанный фронтендом запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveBackendRequest фиксирует запрос к backend API
// status = 0 означает сетевую ошибку
func (m *Metrics) ObserveBackendRequest(operation string, status int, duration time.Duration) {
	label := strconv.Itoa(status)
	if status == 0 {
		label = "transport_error"
	}
	m.backendRequestsTotal.WithLabelValues(operation, label).Inc()
	m.backendRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetSessionActive обновляет признак наличия сессии
func (m *Metrics) SetSessionActive(active bool) {
	if active {
		m.sessionActive.Set(1)
		return
	}
	m.sessionActive.Set(0)
}
