// Package metrics exposes Prometheus collectors for the order lifecycle.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OrderMetrics aggregates the collectors tracking order flow through the system.
type OrderMetrics struct {
	Placed      prometheus.Counter
	Cancelled   prometheus.Counter
	Delivered   prometheus.Counter
	Transitions *prometheus.CounterVec
	ActiveUnits prometheus.Gauge
}

// NewOrderMetrics creates the order collectors and registers them with the
// default Prometheus registry.
func NewOrderMetrics() *OrderMetrics {
	return NewOrderMetricsWith(prometheus.DefaultRegisterer)
}

// NewOrderMetricsWith creates the order collectors and registers them with the
// provided registerer. Tests pass a fresh prometheus.NewRegistry() to avoid
// duplicate registration panics.
func NewOrderMetricsWith(reg prometheus.Registerer) *OrderMetrics {
	placed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "kirana",
		Subsystem: "orders",
		Name:      "placed_total",
		Help:      "Total number of orders placed.",
	})
	cancelled := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "kirana",
		Subsystem: "orders",
		Name:      "cancelled_total",
		Help:      "Total number of orders cancelled.",
	})
	delivered := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "kirana",
		Subsystem: "orders",
		Name:      "delivered_total",
		Help:      "Total number of orders delivered.",
	})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kirana",
		Subsystem: "orders",
		Name:      "status_transitions_total",
		Help:      "Total number of order status transitions.",
	}, []string{"from", "to"})
	activeUnits := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "kirana",
		Subsystem: "lifecycle",
		Name:      "active_units",
		Help:      "Number of lifecycle units currently advancing orders.",
	})

	reg.MustRegister(placed, cancelled, delivered, transitions, activeUnits)
	return &OrderMetrics{
		Placed:      placed,
		Cancelled:   cancelled,
		Delivered:   delivered,
		Transitions: transitions,
		ActiveUnits: activeUnits,
	}
}

// Handler returns the HTTP handler serving the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
