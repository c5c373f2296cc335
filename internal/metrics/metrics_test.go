package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecordFetchAttemptTracksCallsAndErrors(t *testing.T) {
	r := NewRecorder()

	r.RecordFetchAttempt("bootstrap-static", 120*time.Millisecond, nil)
	r.RecordFetchAttempt("bootstrap-static", 80*time.Millisecond, errors.New("boom"))
	r.RecordFetchAttempt("fixtures", 40*time.Millisecond, nil)

	snap := r.FetchSnapshot("bootstrap-static")
	if snap.Calls != 2 {
		t.Fatalf("expected 2 calls, got %d", snap.Calls)
	}
	if snap.Errors != 1 {
		t.Fatalf("expected 1 error, got %d", snap.Errors)
	}
	if snap.LastCallLatency != 80*time.Millisecond {
		t.Fatalf("expected last latency 80ms, got %s", snap.LastCallLatency)
	}
	if got := r.FetchSnapshot("fixtures").Calls; got != 1 {
		t.Fatalf("expected 1 fixtures call, got %d", got)
	}
	if got := r.FetchSnapshot("unknown"); got.Calls != 0 {
		t.Fatalf("expected zero snapshot for unknown endpoint, got %+v", got)
	}
}

func TestRecordRunCycleAndRows(t *testing.T) {
	r := NewRecorder()

	r.RecordRunCycle(time.Second, nil)
	r.RecordRunCycle(time.Second, errors.New("boom"))
	r.RecordRowsWritten(700)

	if r.RunCycles() != 2 {
		t.Fatalf("expected 2 cycles, got %d", r.RunCycles())
	}
	if r.RunErrors() != 1 {
		t.Fatalf("expected 1 failed cycle, got %d", r.RunErrors())
	}
	if r.RowsWritten() != 700 {
		t.Fatalf("expected 700 rows, got %d", r.RowsWritten())
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordFetchAttempt("bootstrap-static", time.Millisecond, nil)
	r.RecordRunCycle(time.Millisecond, nil)
	r.RecordRowsWritten(1)
	if r.RunCycles() != 0 || r.RowsWritten() != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}

func TestSetupDisabledReturnsRecorderWithoutHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected no prometheus handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected no-op shutdown, got %v", err)
	}
}

func TestSetupEnabledWiresPrometheusHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer shutdown(context.Background())

	if handler == nil {
		t.Fatalf("expected prometheus handler")
	}
	rec.RecordFetchAttempt("bootstrap-static", 10*time.Millisecond, nil)
	if rec.FetchSnapshot("bootstrap-static").Calls != 1 {
		t.Fatalf("expected recorder to track alongside otel")
	}
}
