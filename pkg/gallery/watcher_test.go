package gallery_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Charlelielataste/escoffier-gallery/pkg/gallery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageWatcher_FetchesAtOnceAndOnEveryTick(t *testing.T) {
	// Arrange
	var updates atomic.Int32
	watcher := gallery.NewUsageWatcher(
		func(context.Context) (gallery.Usage, error) { return gallery.Usage{Plan: "Free"}, nil },
		func(usage gallery.Usage) {
			assert.Equal(t, "Free", usage.Plan)
			updates.Add(1)
		},
		nil,
	).WithInterval(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Act
	go watcher.Run(ctx)

	// Assert
	require.Eventually(t, func() bool { return updates.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
}

func TestUsageWatcher_OverlappingFetchesAreNotDeduplicated(t *testing.T) {
	// Arrange
	var inFlight, maxInFlight atomic.Int32
	release := make(chan struct{})
	watcher := gallery.NewUsageWatcher(
		func(ctx context.Context) (gallery.Usage, error) {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				current := maxInFlight.Load()
				if n <= current || maxInFlight.CompareAndSwap(current, n) {
					break
				}
			}
			<-release
			return gallery.Usage{}, nil
		},
		nil,
		nil,
	).WithInterval(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Act
	go watcher.Run(ctx)

	// Assert
	require.Eventually(t, func() bool { return maxInFlight.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	close(release)
}

func TestUsageWatcher_ReportsErrors(t *testing.T) {
	// Arrange
	errs := make(chan error, 1)
	watcher := gallery.NewUsageWatcher(
		func(context.Context) (gallery.Usage, error) { return gallery.Usage{}, assert.AnError },
		nil,
		func(err error) {
			select {
			case errs <- err:
			default:
			}
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Act
	go watcher.Run(ctx)

	// Assert
	select {
	case err := <-errs:
		assert.ErrorIs(t, err, assert.AnError)
	case <-time.After(2 * time.Second):
		t.Fatal("no error reported")
	}
}
