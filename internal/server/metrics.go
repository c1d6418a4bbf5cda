// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/toeirei/keycalc/internal/calc"
)

// Metrics holds the keypad instruments on a private registry.
type Metrics struct {
	registry       *prometheus.Registry
	keys           *prometheus.CounterVec
	errors         *prometheus.CounterVec
	calculations   *prometheus.CounterVec
	historyEntries prometheus.Gauge
}

// NewMetrics registers the keypad instruments.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		keys: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keycalc_keys_total",
			Help: "Keys pressed, by kind.",
		}, []string{"kind"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keycalc_errors_total",
			Help: "Failed evaluations, by class.",
		}, []string{"class"}),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keycalc_calculations_total",
			Help: "Completed calculations, by operation.",
		}, []string{"operation"}),
		historyEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "keycalc_history_entries",
			Help: "Entries currently in the history log.",
		}),
	}
	m.registry.MustRegister(m.keys, m.errors, m.calculations, m.historyEntries)
	return m
}

func (m *Metrics) observe(out calc.Outcome) {
	m.keys.WithLabelValues(out.Key.Kind.String()).Inc()
	if out.Err != nil {
		m.errors.WithLabelValues(calc.ErrorClass(out.Err)).Inc()
	}
	if out.Entry != nil {
		m.calculations.WithLabelValues(out.Entry.Op.Name()).Inc()
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
