package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса в отдельном реестре
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	reportsComputed *prometheus.CounterVec
	daysEmitted     prometheus.Counter
	recordsDropped  *prometheus.CounterVec
	cacheRequests   *prometheus.CounterVec
	upstreamErrors  *prometheus.CounterVec
}

// New создает и регистрирует метрики с префиксом serviceName
func New(serviceName string) *Metrics {
	serviceName = sanitizeName(serviceName)
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		reportsComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "availability_reports_total",
			Help:      "Availability reports computed, by capacity mode",
		}, []string{"mode"}),
		daysEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "availability_days_emitted_total",
			Help:      "Available days emitted across all reports",
		}),
		recordsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "availability_records_dropped_total",
			Help:      "Malformed or excluded input records skipped by the normalizer",
		}, []string{"kind"}),
		cacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "report_cache_requests_total",
			Help:      "Report cache lookups by result",
		}, []string{"result"}),
		upstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "upstream_errors_total",
			Help:      "Errors returned by the offer data source",
		}, []string{"source"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.reportsComputed,
		m.daysEmitted,
		m.recordsDropped,
		m.cacheRequests,
		m.upstreamErrors,
	)

	return m
}

// RegisterDB добавляет сбор статистики пула соединений
func (m *Metrics) RegisterDB(db *sql.DB, dbName string) {
	m.registry.MustRegister(collectors.NewDBStatsCollector(db, dbName))
}

// Handler возвращает HTTP handler для эндпоинта метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Observe* методы безопасно вызывать на nil (метрики выключены)

// ObserveHTTPRequest фиксирует завершённый HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveReport фиксирует вычисленный отчёт
func (m *Metrics) ObserveReport(mode string, days int, droppedTimeslots int, droppedBookings int) {
	if m == nil {
		return
	}
	m.reportsComputed.WithLabelValues(mode).Inc()
	m.daysEmitted.Add(float64(days))
	m.recordsDropped.WithLabelValues("timeslot").Add(float64(droppedTimeslots))
	m.recordsDropped.WithLabelValues("booking").Add(float64(droppedBookings))
}

// ObserveCache фиксирует результат обращения к кешу ("hit", "miss", "error")
func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.cacheRequests.WithLabelValues(result).Inc()
}

// ObserveUpstreamError фиксирует ошибку источника данных
func (m *Metrics) ObserveUpstreamError(source string) {
	if m == nil {
		return
	}
	m.upstreamErrors.WithLabelValues(source).Inc()
}

// sanitizeName заменяет недопустимые для Prometheus символы на '_'
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
