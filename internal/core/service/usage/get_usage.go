package usage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

func (u *usageService) GetUsage(ctx context.Context) (domain.UsageSnapshot, error) {
	if err := u.source.CheckConfigured(); err != nil {
		return domain.UsageSnapshot{}, err
	}

	counters, err := u.source.Usage(ctx)
	switch {
	case errors.Is(err, domain.ErrNoUsageData), errors.Is(err, domain.ErrUpstream), errors.Is(err, domain.ErrConfiguration):
		return domain.UsageSnapshot{}, err
	case err != nil:
		return domain.UsageSnapshot{}, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}

	return domain.NewUsageSnapshot(counters, time.Now()), nil
}
