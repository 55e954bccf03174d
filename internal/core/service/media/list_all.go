package media

import (
	"context"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

func (m *mediaService) ListAll(ctx context.Context) (domain.CombinedListing, error) {
	var (
		images, videos             []domain.MediaAsset
		imagesFailed, videosFailed bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		images, imagesFailed = m.listKind(gctx, domain.MediaKindImage)
		return nil
	})
	g.Go(func() error {
		videos, videosFailed = m.listKind(gctx, domain.MediaKindVideo)
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.CombinedListing{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.CombinedListing{}, err
	}

	return domain.CombinedListing{
		Images:         images,
		Videos:         videos,
		UpstreamFailed: imagesFailed || videosFailed,
	}, nil
}

// listKind swallows provider errors into an empty list and reports it did
func (m *mediaService) listKind(ctx context.Context, kind domain.MediaKind) ([]domain.MediaAsset, bool) {
	result, err := m.catalog.Search(ctx, m.query(kind, m.cfg.CombinedSize, ""))
	if err != nil {
		m.logger.Error("failed to search media for combined listing", "kind", kind, "error", err)
		m.metrics.ListingOutcome(kind, domain.OutcomeUpstreamFailed)
		return []domain.MediaAsset{}, true
	}
	return filterAssets(m.folder, kind, result.Assets), false
}
