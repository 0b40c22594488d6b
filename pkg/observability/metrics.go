package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

// Metrics counts binding resolutions and script runs.
type Metrics struct {
	BindingRequests *prometheus.CounterVec
	BindingDuration *prometheus.HistogramVec
	ScriptRuns      *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		BindingRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "drills_binding_requests_total",
				Help: "Total number of widget binding resolutions",
			},
			[]string{"element", "outcome"},
		),
		BindingDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "drills_binding_duration_seconds",
				Help:    "Duration of widget binding resolutions",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"element"},
		),
		ScriptRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "drills_script_runs_total",
				Help: "Total number of scripts run through a server surface",
			},
			[]string{"script", "outcome"},
		),
	}
	reg.MustRegister(m.BindingRequests, m.BindingDuration, m.ScriptRuns)
	return m
}

// ObserveBinding records one binding resolution.
func (m *Metrics) ObserveBinding(element string, failed bool, took time.Duration) {
	m.BindingRequests.WithLabelValues(element, outcome(failed)).Inc()
	m.BindingDuration.WithLabelValues(element).Observe(took.Seconds())
}

// ObserveScript records one script run.
func (m *Metrics) ObserveScript(script string, failed bool) {
	m.ScriptRuns.WithLabelValues(script, outcome(failed)).Inc()
}

func outcome(failed bool) string {
	if failed {
		return OutcomeFailed
	}
	return OutcomeOK
}
