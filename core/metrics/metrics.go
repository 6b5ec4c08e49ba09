package metrics

import "time"

// RunStats summarises one scheduling run for observability purposes.
type RunStats struct {
	Days               int
	Sessions           int
	DayWarnings        int
	ValidationWarnings int
	Tasks              int
	Duration           time.Duration
}

// Sink records scheduling runs.
type Sink interface {
	RecordRun(stats RunStats) error
}

// NopSink discards all records.
type NopSink struct{}

func (NopSink) RecordRun(RunStats) error { return nil }

// MultiSink fans records out to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRun forwards the record to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordRun(stats RunStats) error {
	for _, s := range m.Sinks {
		if err := s.RecordRun(stats); err != nil {
			return err
		}
	}
	return nil
}
