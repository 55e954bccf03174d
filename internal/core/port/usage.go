package port

import (
	"context"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

// UsageSource is an interface to define provider quota interactions
type UsageSource interface {
	// CheckConfigured fails with domain.ErrConfiguration without calling the provider
	CheckConfigured() error
	Usage(ctx context.Context) (domain.UsageCounters, error)
}

// UsageService is an interface to define the usage reporting service
type UsageService interface {
	GetUsage(ctx context.Context) (domain.UsageSnapshot, error)
}

// UsageBroadcaster pushes fresh snapshots to connected clients
type UsageBroadcaster interface {
	BroadcastUsage(snapshot domain.UsageSnapshot)
}

// UsageFeed exposes the last snapshot fetched in background
type UsageFeed interface {
	Latest() (domain.UsageSnapshot, bool)
}
