// Package metrics holds the desk's Prometheus counters. The desk is a
// terminal program, so instead of serving /metrics it writes the registry
// to a file for the node exporter's textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry owns the desk's collectors and the Prometheus registry they
// are registered with.
type Registry struct {
	reg *prometheus.Registry

	OrdersPriced      prometheus.Counter
	PricingWarnings   prometheus.Counter
	PickupInvalid     prometheus.Gauge
	StatusTransitions *prometheus.CounterVec
	RemindersSent     prometheus.Counter
	OpenOrders        prometheus.Gauge
	ReportSeconds     prometheus.Histogram
}

// NewRegistry creates and registers every desk collector.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	priced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ebr_orders_priced_total",
		Help: "Orders created, imported or quoted through the pricing calculator.",
	})
	warnings := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ebr_pricing_warnings_total",
		Help: "Line items whose name was not recognised when an order was created, imported or quoted.",
	})
	invalid := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ebr_pickup_invalid_orders",
		Help: "Open orders whose pickup date could not be parsed, at the last listing.",
	})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ebr_status_transitions_total",
		Help: "Order status changes, by new status.",
	}, []string{"status"})
	reminders := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ebr_reminders_sent_total",
		Help: "Upcoming pickup reminders delivered.",
	})
	open := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ebr_open_orders",
		Help: "Pending and approved orders at the last listing.",
	})
	report := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ebr_report_duration_seconds",
		Help:    "Time spent building revenue reports.",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(priced, warnings, invalid, transitions, reminders, open, report)
	return &Registry{
		reg:               r,
		OrdersPriced:      priced,
		PricingWarnings:   warnings,
		PickupInvalid:     invalid,
		StatusTransitions: transitions,
		RemindersSent:     reminders,
		OpenOrders:        open,
		ReportSeconds:     report,
	}
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// WriteFile writes every metric in text exposition format to path.
// The file is replaced atomically.
func (r *Registry) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
