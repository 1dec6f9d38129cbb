package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Wizard event names
const (
	EventPick           = "pick"
	EventPickRejected   = "pick_rejected"
	EventAdvance        = "advance"
	EventAdvanceBlocked = "advance_blocked"
	EventRetreat        = "retreat"
	EventConfirm        = "confirm"
	EventExit           = "exit"
)

// Metrics собирает метрики HTTP и мастера бронирования
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	wizardEventsTotal   *prometheus.CounterVec
	activeSessions      prometheus.Gauge
	checkoutTotal       *prometheus.CounterVec
}

// New регистрирует коллекторы в reg. Если reg nil, используется DefaultRegisterer.
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		wizardEventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "wizard_events_total",
			Help:        "Booking wizard events by type and stage",
			ConstLabels: labels,
		}, []string{"event", "stage"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "wizard_active_sessions",
			Help:        "Number of live booking wizard sessions",
			ConstLabels: labels,
		}),
		checkoutTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "checkout_handoffs_total",
			Help:        "Checkout handoffs by mode and result",
			ConstLabels: labels,
		}, []string{"mode", "result"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.wizardEventsTotal,
		m.activeSessions,
		m.checkoutTotal,
	)
	return m
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) ObserveWizardEvent(event, stage string) {
	if m == nil {
		return
	}
	m.wizardEventsTotal.WithLabelValues(event, stage).Inc()
}

func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

func (m *Metrics) ObserveCheckout(mode string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.checkoutTotal.WithLabelValues(mode, result).Inc()
}
