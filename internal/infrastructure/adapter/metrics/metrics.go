package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marketplace"

// Metrics groups the service collectors
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestLatency     *prometheus.HistogramVec
	WebhookOutcomes    *prometheus.CounterVec
	WebhookRejections  *prometheus.CounterVec
	Checkouts          *prometheus.CounterVec
	TransactionChanges *prometheus.CounterVec
	PublishFailures    prometheus.Counter

	registry *prometheus.Registry
}

// New creates the collectors and registers them on a dedicated registry
func New() *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		RequestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latency of HTTP requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
		WebhookOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "webhook_outcomes_total",
				Help:      "Webhook deliveries by channel and outcome",
			},
			[]string{"channel", "outcome"},
		),
		WebhookRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "webhook_rejections_total",
				Help:      "Webhook deliveries rejected for signature or payload errors",
			},
			[]string{"channel"},
		),
		Checkouts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checkouts_total",
				Help:      "Checkout attempts by result",
			},
			[]string{"result"},
		),
		TransactionChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transaction_field_changes_total",
				Help:      "Reconciled transaction field changes",
			},
			[]string{"field", "changed_by"},
		),
		PublishFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "event_publish_failures_total",
				Help:      "Transaction events that could not be published",
			},
		),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.RequestsTotal,
		m.RequestLatency,
		m.WebhookOutcomes,
		m.WebhookRejections,
		m.Checkouts,
		m.TransactionChanges,
		m.PublishFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registerer exposes the registry for collectors owned by other components
func (m *Metrics) Registerer() prometheus.Registerer {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
