// Package metrics exposes Prometheus instrumentation for the analysis engines
// and the scenario lifecycle.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"scenario_planning/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "scenario_planning"

// Collector implements interfaces.IAnalysisRecorder on top of Prometheus.
type Collector struct {
	gatherer prometheus.Gatherer

	AnalysisRuns     *prometheus.CounterVec
	AnalysisDuration *prometheus.HistogramVec
	SimulationTrials prometheus.Counter
	Lifecycle        *prometheus.CounterVec
}

var _ interfaces.IAnalysisRecorder = (*Collector)(nil)

// NewCollector registers the metrics against reg, defaulting to the global
// registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "analysis",
		Name:      "runs_total",
		Help:      "Completed analysis runs by kind.",
	}, []string{"kind"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "analysis",
		Name:      "duration_seconds",
		Help:      "Analysis run duration in seconds by kind.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"kind"})
	trials := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "simulation",
		Name:      "trials_total",
		Help:      "Monte Carlo trials evaluated.",
	})
	lifecycle := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scenario",
		Name:      "lifecycle_events_total",
		Help:      "Scenario lifecycle events by action.",
	}, []string{"action"})

	for _, c := range []prometheus.Collector{runs, duration, trials, lifecycle} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}

	return &Collector{
		gatherer:         gatherer,
		AnalysisRuns:     runs,
		AnalysisDuration: duration,
		SimulationTrials: trials,
		Lifecycle:        lifecycle,
	}, nil
}

func (c *Collector) ObserveAnalysis(kind string, d time.Duration) {
	if c == nil {
		return
	}
	c.AnalysisRuns.WithLabelValues(kind).Inc()
	c.AnalysisDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func (c *Collector) ObserveSimulationTrials(trials int) {
	if c == nil {
		return
	}
	c.SimulationTrials.Add(float64(trials))
}

func (c *Collector) IncLifecycle(action string) {
	if c == nil {
		return
	}
	c.Lifecycle.WithLabelValues(action).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
