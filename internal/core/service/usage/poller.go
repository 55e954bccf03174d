package usage

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/config"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/port"
)

// Poller refreshes the usage snapshot in background and pushes it to subscribers.
// A tick is skipped while a fetch is outstanding, and consecutive failures
// delay the next fetch by min(interval*2^failures, maxBackoff).
type Poller struct {
	service     port.UsageService
	broadcaster port.UsageBroadcaster
	metrics     port.MetricsRecorder
	interval    time.Duration
	maxBackoff  time.Duration
	logger      *slog.Logger

	inFlight atomic.Bool
	wg       sync.WaitGroup

	mu          sync.RWMutex
	latest      domain.UsageSnapshot
	hasLatest   bool
	failures    int
	nextAttempt time.Time
}

// NewPoller creates a Poller. broadcaster may be nil.
func NewPoller(service port.UsageService, broadcaster port.UsageBroadcaster, metrics port.MetricsRecorder, cfg config.UsageConfig, logger *slog.Logger) *Poller {
	return &Poller{
		service:     service,
		broadcaster: broadcaster,
		metrics:     metrics,
		interval:    cfg.PollInterval,
		maxBackoff:  cfg.MaxBackoff,
		logger:      logger,
	}
}

// Run polls until ctx is cancelled and waits for the outstanding fetch
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("usage poller started", "interval", p.interval)
	p.tick(ctx)

	for {
		select {
		case <-ticker.C:
			p.tick(ctx)
		case <-ctx.Done():
			p.wg.Wait()
			p.logger.Info("usage poller stopped")
			return
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	p.mu.RLock()
	nextAttempt := p.nextAttempt
	p.mu.RUnlock()
	if time.Now().Before(nextAttempt) {
		return
	}

	if !p.inFlight.CompareAndSwap(false, true) {
		p.logger.Debug("usage fetch still in flight, skipping tick")
		return
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.inFlight.Store(false)
		_ = p.Refresh(ctx)
	}()
}

// Refresh fetches a snapshot now
func (p *Poller) Refresh(ctx context.Context) error {
	snapshot, err := p.service.GetUsage(ctx)
	if err != nil {
		p.mu.Lock()
		p.failures++
		delay := p.BackoffDelay(p.failures)
		p.nextAttempt = time.Now().Add(delay)
		failures := p.failures
		p.mu.Unlock()

		p.metrics.UsagePollFailed()
		p.logger.Warn("failed to refresh usage", "error", err, "consecutive_failures", failures, "retry_in", delay)
		return err
	}

	p.mu.Lock()
	p.latest = snapshot
	p.hasLatest = true
	p.failures = 0
	p.nextAttempt = time.Time{}
	p.mu.Unlock()

	if p.broadcaster != nil {
		p.broadcaster.BroadcastUsage(snapshot)
	}
	return nil
}

// BackoffDelay returns how long to wait after the given number of consecutive failures
func (p *Poller) BackoffDelay(failures int) time.Duration {
	if failures <= 0 {
		return 0
	}
	delay := p.interval
	for i := 0; i < failures; i++ {
		delay *= 2
		if delay >= p.maxBackoff {
			return p.maxBackoff
		}
	}
	return delay
}

// Latest returns the last good snapshot
func (p *Poller) Latest() (domain.UsageSnapshot, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.latest, p.hasLatest
}

// ConsecutiveFailures returns the number of failed fetches since the last success
func (p *Poller) ConsecutiveFailures() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.failures
}
