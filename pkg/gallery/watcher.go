package gallery

import (
	"context"
	"time"
)

// UsageRefreshInterval is the refresh period of the usage dashboard
const UsageRefreshInterval = 30 * time.Second

// UsageWatcher refetches the usage at a fixed interval. Every tick runs in its
// own goroutine: a slow fetch neither delays nor cancels the next one.
type UsageWatcher struct {
	fetch    func(ctx context.Context) (Usage, error)
	interval time.Duration
	onUsage  func(Usage)
	onError  func(error)
}

// NewUsageWatcher creates a watcher calling onUsage or onError after each fetch.
// Both callbacks may run concurrently.
func NewUsageWatcher(fetch func(ctx context.Context) (Usage, error), onUsage func(Usage), onError func(error)) *UsageWatcher {
	return &UsageWatcher{
		fetch:    fetch,
		interval: UsageRefreshInterval,
		onUsage:  onUsage,
		onError:  onError,
	}
}

// WithInterval returns a copy of the watcher ticking every interval
func (w UsageWatcher) WithInterval(interval time.Duration) *UsageWatcher {
	w.interval = interval
	return &w
}

// Run fetches at once then on every tick until ctx is done
func (w *UsageWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	go w.refresh(ctx)
	for {
		select {
		case <-ticker.C:
			go w.refresh(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *UsageWatcher) refresh(ctx context.Context) {
	usage, err := w.fetch(ctx)
	if err != nil {
		if ctx.Err() == nil && w.onError != nil {
			w.onError(err)
		}
		return
	}
	if w.onUsage != nil {
		w.onUsage(usage)
	}
}
