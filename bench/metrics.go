package bench

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "diversity"
	benchSubsystem   = "bench"
)

// Metrics counts runs in a private registry. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// RunsTotal counts successful runs.
	// Labels: experiment, algorithm
	RunsTotal *prometheus.CounterVec

	// FailuresTotal counts failed runs.
	// Labels: experiment, algorithm
	FailuresTotal *prometheus.CounterVec

	// RunSeconds measures Solve wall time.
	// Labels: algorithm
	RunSeconds *prometheus.HistogramVec

	// GeneratedNodesTotal counts branch-and-bound child nodes.
	// Labels: experiment
	GeneratedNodesTotal *prometheus.CounterVec

	// BestZ is the best diversity of the last completed case.
	// Labels: experiment, instance, m
	BestZ *prometheus.GaugeVec
}

// NewMetrics registers the bench collectors in a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: benchSubsystem,
			Name:      "runs_total",
			Help:      "Completed solver runs",
		}, []string{"experiment", "algorithm"}),
		FailuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: benchSubsystem,
			Name:      "failures_total",
			Help:      "Solver runs that returned an error",
		}, []string{"experiment", "algorithm"}),
		RunSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: benchSubsystem,
			Name:      "run_seconds",
			Help:      "Solve wall time in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"algorithm"}),
		GeneratedNodesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: benchSubsystem,
			Name:      "generated_nodes_total",
			Help:      "Branch-and-bound nodes generated",
		}, []string{"experiment"}),
		BestZ: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: benchSubsystem,
			Name:      "best_z",
			Help:      "Best diversity found for a case",
		}, []string{"experiment", "instance", "m"}),
	}
}

// WriteTextfile writes every collected metric to path in the text
// exposition format, for the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) observe(c Case, rec Record) {
	if m == nil {
		return
	}
	algo := string(c.Options.Algorithm)
	m.RunsTotal.WithLabelValues(c.Experiment, algo).Inc()
	m.RunSeconds.WithLabelValues(algo).Observe(rec.Elapsed.Seconds())
	if rec.Generated > 0 {
		m.GeneratedNodesTotal.WithLabelValues(c.Experiment).Add(float64(rec.Generated))
	}
}

func (m *Metrics) observeFailure(c Case) {
	if m == nil {
		return
	}
	m.FailuresTotal.WithLabelValues(c.Experiment, string(c.Options.Algorithm)).Inc()
}

func (m *Metrics) observeBest(c Case, z float64) {
	if m == nil {
		return
	}
	m.BestZ.WithLabelValues(c.Experiment, c.Instance.Name, strconv.Itoa(c.Options.Size)).Set(z)
}
