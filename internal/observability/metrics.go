// Package observability provides Prometheus metrics for the monitor.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments of the price-alert monitor.
type Metrics struct {
	registry *prometheus.Registry

	// Poll metrics
	PricePolls        prometheus.Counter
	PricePollFailures prometheus.Counter

	// Alert metrics
	AlertsFired  prometheus.Counter
	AcksReceived prometheus.Counter

	// Watchlist metrics
	ArmedTargets     prometheus.Gauge
	TriggeredTargets prometheus.Gauge
}

// NewMetrics creates a Metrics instance backed by its own registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "token_radar"
	}

	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		PricePolls: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "price_polls_total",
			Help:      "Total number of price polls issued",
		}),
		PricePollFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "price_poll_failures_total",
			Help:      "Total number of price polls that failed or returned no price",
		}),

		AlertsFired: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "alerts_fired_total",
			Help:      "Total number of price alerts fired",
		}),
		AcksReceived: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "acks_received_total",
			Help:      "Total number of alert acknowledgments received",
		}),

		ArmedTargets: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "watchlist",
			Name:      "armed_targets",
			Help:      "Current number of armed watchlist targets",
		}),
		TriggeredTargets: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "watchlist",
			Name:      "triggered_targets",
			Help:      "Current number of triggered watchlist targets",
		}),
	}
}

// Handler returns an HTTP handler serving this instance's /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
