package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds the Prometheus collectors for simulation runs and API
// requests, registered in a private registry so tests can build several.
type Metrics struct {
	Registry *prometheus.Registry

	simulations      *prometheus.CounterVec
	simulatedMonths  prometheus.Counter
	simulateDuration prometheus.Histogram
	requestsTotal    *prometheus.CounterVec
}

// NewMetrics creates a registry and registers all collectors in it.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		simulations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creditsim_simulations_total",
				Help: "Simulation runs by caller.",
			},
			[]string{"source"},
		),
		simulatedMonths: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "creditsim_simulated_months_total",
				Help: "Ledger rows produced across all runs.",
			},
		),
		simulateDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "creditsim_simulate_duration_seconds",
				Help:    "Wall time of a single simulation run.",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
			},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creditsim_requests_total",
				Help: "API requests by outcome.",
			},
			[]string{"status"},
		),
	}
}

// RecordSimulation counts one run of the given number of months.
func (m *Metrics) RecordSimulation(source string, months int, d time.Duration) {
	m.simulations.WithLabelValues(source).Inc()
	m.simulatedMonths.Add(float64(months))
	m.simulateDuration.Observe(d.Seconds())
}

// IncrRequest increments the request counter with a status label.
func (m *Metrics) IncrRequest(status string) {
	m.requestsTotal.WithLabelValues(status).Inc()
}

// Simulations returns the run count for a source.
func (m *Metrics) Simulations(source string) float64 {
	return counterValue(m.simulations.WithLabelValues(source))
}

// SimulatedMonths returns the total number of rows produced.
func (m *Metrics) SimulatedMonths() float64 {
	return counterValue(m.simulatedMonths)
}

// Requests returns the request count for a status label.
func (m *Metrics) Requests(status string) float64 {
	return counterValue(m.requestsTotal.WithLabelValues(status))
}

func counterValue(c prometheus.Counter) float64 {
	pm := &dto.Metric{}
	if err := c.Write(pm); err != nil {
		return 0
	}
	if pm.Counter != nil && pm.Counter.Value != nil {
		return *pm.Counter.Value
	}
	return 0
}
