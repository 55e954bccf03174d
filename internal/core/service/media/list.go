package media

import (
	"context"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

func (m *mediaService) List(ctx context.Context, kind domain.MediaKind, cursor string) (domain.Page, error) {
	if kind != domain.MediaKindImage && kind != domain.MediaKindVideo {
		return domain.Page{}, domain.ErrInvalidMediaKind
	}

	providerCursor, err := domain.DecodeCursor(m.folder, kind, cursor)
	if err != nil {
		return domain.Page{}, err
	}

	result, err := m.catalog.Search(ctx, m.query(kind, m.cfg.PageSize(kind), providerCursor))
	if err != nil {
		m.logger.Error("failed to search media", "kind", kind, "error", err)
		m.metrics.ListingOutcome(kind, domain.OutcomeUpstreamFailed)
		return domain.Page{
			Assets:  []domain.MediaAsset{},
			Outcome: domain.OutcomeUpstreamFailed,
		}, nil
	}

	assets := filterAssets(m.folder, kind, result.Assets)
	nextCursor := domain.EncodeCursor(m.folder, kind, result.NextCursor)

	outcome := domain.OutcomeOK
	if len(assets) == 0 && nextCursor == "" {
		outcome = domain.OutcomeEmpty
	}
	m.metrics.ListingOutcome(kind, outcome)

	return domain.Page{
		Assets:     assets,
		NextCursor: nextCursor,
		HasMore:    nextCursor != "",
		Outcome:    outcome,
	}, nil
}
