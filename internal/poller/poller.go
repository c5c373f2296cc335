package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fpl-data-collector/internal/collector"
	"fpl-data-collector/internal/logging"
)

const defaultInterval = 6 * time.Hour

// Runner performs one collection pass.
type Runner interface {
	Run(ctx context.Context) (collector.Result, error)
}

// Poller re-runs the collector on an interval for operators who prefer a
// long-lived process over an external scheduler.
type Poller struct {
	runner   Runner
	logger   *slog.Logger
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the polling loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	LastGameweek        int
}

// New constructs a Poller with sane defaults.
func New(runner Runner, logger *slog.Logger, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		runner:   runner,
		logger:   logger,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
// The first collection runs immediately.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", logging.FieldDurationMS, p.interval.Milliseconds())
		p.runOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.runOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
}

func (p *Poller) runOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	result, err := p.runner.Run(ctx)
	if err != nil {
		p.recordFailure(err, start)
		return
	}
	p.recordSuccess(result, start)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(result collector.Result, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.LastGameweek = result.Gameweek
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
