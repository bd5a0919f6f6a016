// Package observability wires logging and metrics for the command-line tools.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts state lifecycle events of one run.
type Metrics struct {
	Registry *prometheus.Registry

	Initializations prometheus.Counter
	SeededCells     prometheus.Counter
	Comparisons     *prometheus.CounterVec
}

// NewMetrics registers all counters on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		Initializations: f.NewCounter(prometheus.CounterOpts{
			Name: "state_initializations_total",
			Help: "Total number of state initializations",
		}),
		SeededCells: f.NewCounter(prometheus.CounterOpts{
			Name: "state_seeded_cells_total",
			Help: "Total number of cells seeded with extremal saturation",
		}),
		Comparisons: f.NewCounterVec(prometheus.CounterOpts{
			Name: "state_comparisons_total",
			Help: "Total number of state comparisons by result",
		}, []string{"result"}),
	}
}

// IncrementInitializations records a state initialization.
func (m *Metrics) IncrementInitializations() {
	m.Initializations.Inc()
}

// AddSeededCells records n seeded cells.
func (m *Metrics) AddSeededCells(n int) {
	m.SeededCells.Add(float64(n))
}

// ObserveComparison records the outcome of an equality check.
func (m *Metrics) ObserveComparison(equal bool) {
	result := "mismatch"
	if equal {
		result = "equal"
	}
	m.Comparisons.WithLabelValues(result).Inc()
}

// WriteTextfile dumps the registry in text exposition format, suitable for a
// node-exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
