package metrics

import (
	coremetrics "github.com/prakharVirus1289/calender-scheduler/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records scheduling runs in Prometheus metrics.
type PromSink struct {
	runs     prometheus.Counter
	sessions prometheus.Counter
	warnings *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewPromSink registers scheduling metrics on the default Prometheus
// registerer. The metrics server is started separately.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "schedule_runs_total",
		Help: "Total number of scheduling runs",
	})
	sessions := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "schedule_sessions_total",
		Help: "Total number of sessions placed on the plan",
	})
	warnings := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_warnings_total",
		Help: "Total number of warnings emitted by scheduling runs",
	}, []string{"kind"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "schedule_run_duration_seconds",
		Help:    "Time spent generating one plan",
		Buckets: prometheus.DefBuckets,
	})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(sessions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			sessions = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(warnings); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			warnings = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{runs: runs, sessions: sessions, warnings: warnings, duration: duration}, nil
}

// RecordRun increments the run counters and observes the run duration.
func (s *PromSink) RecordRun(stats coremetrics.RunStats) error {
	s.runs.Inc()
	s.sessions.Add(float64(stats.Sessions))
	s.warnings.WithLabelValues("day").Add(float64(stats.DayWarnings))
	s.warnings.WithLabelValues("validation").Add(float64(stats.ValidationWarnings))
	s.duration.Observe(stats.Duration.Seconds())
	return nil
}
