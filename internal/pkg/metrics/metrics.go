// Package metrics holds the Prometheus collectors of the bakery service.
package metrics

import (
	"net/http"

	"bakery/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Seed run outcomes.
const (
	OutcomeSeeded  = "seeded"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

type SeedMetrics struct {
	Runs     *prometheus.CounterVec
	Orders   *prometheus.CounterVec
	Duration prometheus.Histogram
}

// NewSeedMetrics creates the seeding collectors and registers them with reg.
func NewSeedMetrics(reg prometheus.Registerer) *SeedMetrics {
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bakery",
		Subsystem: "demo_data",
		Name:      "seed_runs_total",
		Help:      "Total number of demo data seed runs by outcome.",
	}, []string{"outcome"})
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bakery",
		Subsystem: "demo_data",
		Name:      "orders_generated_total",
		Help:      "Total number of generated orders by final state.",
	}, []string{"state"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "bakery",
		Subsystem: "demo_data",
		Name:      "seed_duration_seconds",
		Help:      "Duration of successful seed runs in seconds.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	})

	reg.MustRegister(runs, orders, duration)
	return &SeedMetrics{Runs: runs, Orders: orders, Duration: duration}
}

// ObserveRun records one run. ordersByState is only counted for seeded runs.
func (m *SeedMetrics) ObserveRun(outcome string, seconds float64, ordersByState map[order.State]int) {
	m.Runs.WithLabelValues(outcome).Inc()
	if outcome != OutcomeSeeded {
		return
	}
	m.Duration.Observe(seconds)
	for state, n := range ordersByState {
		m.Orders.WithLabelValues(state.String()).Add(float64(n))
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// HandlerFor serves the collectors of gatherer only.
func HandlerFor(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
