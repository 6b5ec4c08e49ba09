package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/prakharVirus1289/calender-scheduler/core/metrics"
)

func TestPromSink_RecordRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	stats := coremetrics.RunStats{
		Days:               4,
		Sessions:           7,
		DayWarnings:        2,
		ValidationWarnings: 1,
		Tasks:              3,
		Duration:           5 * time.Millisecond,
	}
	if err := sink.RecordRun(stats); err != nil {
		t.Fatalf("record run: %v", err)
	}
	if v := testutil.ToFloat64(sink.runs); v != 1 {
		t.Fatalf("runs counter = %v, want 1", v)
	}
	if v := testutil.ToFloat64(sink.sessions); v != 7 {
		t.Fatalf("sessions counter = %v, want 7", v)
	}
	if v := testutil.ToFloat64(sink.warnings.WithLabelValues("day")); v != 2 {
		t.Fatalf("day warnings counter = %v, want 2", v)
	}
	if c := testutil.CollectAndCount(sink.duration); c == 0 {
		t.Fatalf("duration histogram not collected")
	}
}

func TestPromSink_ReRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("second register: %v", err)
	}
}
