package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingSubmissions *prometheus.CounterVec
	AlertsWritten      *prometheus.CounterVec
	Cancellations      *prometheus.CounterVec
	StoreCalls         *prometheus.CounterVec
	ActiveInteractions prometheus.Gauge
}

// New создает и регистрирует метрики в глобальном регистре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в reg
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	ns := sanitize(serviceName)

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),

		BookingSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "booking_submissions_total",
			Help:      "Booking submissions by resulting workflow state.",
		}, []string{"state"}),

		AlertsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "alerts_written_total",
			Help:      "Alerts written into interaction slots by kind.",
		}, []string{"kind"}),

		Cancellations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "cancellations_total",
			Help:      "Cancellation workflow steps by outcome.",
		}, []string{"outcome"}),

		StoreCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "reservation_store_calls_total",
			Help:      "Calls to the reservation store by operation and result.",
		}, []string{"operation", "result"}),

		ActiveInteractions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "active_interactions",
			Help:      "Booking interactions currently held in memory.",
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingSubmissions,
		m.AlertsWritten,
		m.Cancellations,
		m.StoreCalls,
		m.ActiveInteractions,
	)

	return m
}

// ObserveSubmission учитывает итоговое состояние отправки бронирования
func (m *Metrics) ObserveSubmission(state string) {
	if m == nil {
		return
	}
	m.BookingSubmissions.WithLabelValues(state).Inc()
}

// ObserveAlert учитывает записанное уведомление
func (m *Metrics) ObserveAlert(kind string) {
	if m == nil {
		return
	}
	m.AlertsWritten.WithLabelValues(kind).Inc()
}

// ObserveCancellation учитывает шаг отмены бронирования
func (m *Metrics) ObserveCancellation(outcome string) {
	if m == nil {
		return
	}
	m.Cancellations.WithLabelValues(outcome).Inc()
}

// ObserveStoreCall учитывает вызов хранилища бронирований
func (m *Metrics) ObserveStoreCall(operation string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.StoreCalls.WithLabelValues(operation, result).Inc()
}

// InteractionOpened / InteractionClosed поддерживают gauge активных сессий бронирования
func (m *Metrics) InteractionOpened() {
	if m == nil {
		return
	}
	m.ActiveInteractions.Inc()
}

func (m *Metrics) InteractionClosed() {
	if m == nil {
		return
	}
	m.ActiveInteractions.Dec()
}

func sanitize(name string) string {
	return strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(strings.ToLower(name))
}
