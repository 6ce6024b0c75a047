package metrics

import (
	"time"

	"aoc_solvers/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds one run's collectors on a private registry, so repeated runs
// in the same process never share counts.
type Metrics struct {
	Registry *prometheus.Registry

	linesParsed   *prometheus.CounterVec
	parseErrors   *prometheus.CounterVec
	answers       *prometheus.CounterVec
	runErrors     *prometheus.CounterVec
	solveDuration *prometheus.HistogramVec

	scanSteps   prometheus.Gauge
	scanPasses  prometheus.Gauge
	seenSetSize prometheus.Gauge
}

func New(cfg *config.Config) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	ns := cfg.Metrics.Prefix
	labels := prometheus.Labels(cfg.Metrics.Labels)

	return &Metrics{
		Registry: reg,

		linesParsed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   ns,
			Name:        "lines_parsed_total",
			Help:        "Input lines parsed into numbers",
			ConstLabels: labels,
		}, []string{"solver"}),

		parseErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   ns,
			Name:        "parse_errors_total",
			Help:        "Inputs rejected because a line was not a valid integer",
			ConstLabels: labels,
		}, []string{"solver"}),

		answers: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   ns,
			Name:        "answers_total",
			Help:        "Answers produced",
			ConstLabels: labels,
		}, []string{"solver"}),

		runErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   ns,
			Name:        "run_errors_total",
			Help:        "Fatal run errors by kind",
			ConstLabels: labels,
		}, []string{"solver", "kind"}),

		solveDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   ns,
			Name:        "solve_duration_seconds",
			Help:        "Time spent computing each part",
			Buckets:     []float64{.0001, .001, .005, .01, .025, .05, .1, .25, .5, 1, 5},
			ConstLabels: labels,
		}, []string{"solver", "part"}),

		scanSteps: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Name:        "frequency_scan_steps",
			Help:        "Deltas applied before the first repeated frequency",
			ConstLabels: labels,
		}),

		scanPasses: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Name:        "frequency_scan_passes",
			Help:        "Passes started over the delta list during the repeat scan",
			ConstLabels: labels,
		}),

		seenSetSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Name:        "frequency_seen_set_size",
			Help:        "Distinct frequencies seen when the scan stopped",
			ConstLabels: labels,
		}),
	}
}

func (m *Metrics) AddLinesParsed(solver string, n int) {
	m.linesParsed.WithLabelValues(solver).Add(float64(n))
}

func (m *Metrics) IncrementParseErrors(solver string) {
	m.parseErrors.WithLabelValues(solver).Inc()
}

func (m *Metrics) AddAnswers(solver string, n int) {
	m.answers.WithLabelValues(solver).Add(float64(n))
}

func (m *Metrics) IncrementRunErrors(solver, kind string) {
	m.runErrors.WithLabelValues(solver, kind).Inc()
}

func (m *Metrics) RecordSolveDuration(solver, part string, d time.Duration) {
	m.solveDuration.WithLabelValues(solver, part).Observe(d.Seconds())
}

func (m *Metrics) RecordScan(steps, passes, seen int) {
	m.scanSteps.Set(float64(steps))
	m.scanPasses.Set(float64(passes))
	m.seenSetSize.Set(float64(seen))
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
