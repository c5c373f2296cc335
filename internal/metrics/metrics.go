package metrics

import (
	"sync"
	"time"
)

type endpointStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about fetch attempts and
// collection runs, mirroring everything into OTel instruments when exporting
// is configured.
type Recorder struct {
	mu          sync.Mutex
	stats       map[string]*endpointStats
	runCycles   int
	runErrors   int
	rowsWritten int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*endpointStats),
		otel:  otel,
	}
}

// RecordFetchAttempt increments counters for one endpoint fetch and stores
// the last observed latency.
func (r *Recorder) RecordFetchAttempt(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[endpoint]
	if !ok {
		stats = &endpointStats{}
		r.stats[endpoint] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetchAttempt(endpoint, duration, err)
	}
}

// RecordRunCycle tracks a full collection run and whether it failed.
func (r *Recorder) RecordRunCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.runCycles++
	if err != nil {
		r.runErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRunCycle(duration, err)
	}
}

// RecordRowsWritten tracks how many rows the writer produced.
func (r *Recorder) RecordRowsWritten(count int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.rowsWritten += count
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRowsWritten(count)
	}
}

// Snapshot is a copy of the current stats for one endpoint.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

// FetchSnapshot returns a copy of the stats recorded for an endpoint.
func (r *Recorder) FetchSnapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.stats[endpoint]; ok && stats != nil {
		return Snapshot{
			Calls:           stats.calls,
			Errors:          stats.errors,
			LastCallLatency: stats.lastCallLatency,
		}
	}
	return Snapshot{}
}

// RunCycles returns the total collection runs recorded.
func (r *Recorder) RunCycles() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runCycles
}

// RunErrors returns the total failed collection runs recorded.
func (r *Recorder) RunErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runErrors
}

// RowsWritten returns the total rows recorded across runs.
func (r *Recorder) RowsWritten() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rowsWritten
}
