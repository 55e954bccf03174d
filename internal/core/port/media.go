package port

import (
	"context"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

// MediaCatalog is an interface to define provider search interactions
type MediaCatalog interface {
	// Search returns assets newest first, with delivery urls already derived
	Search(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error)
}

// MediaService is an interface to define the gallery listing service
type MediaService interface {
	List(ctx context.Context, kind domain.MediaKind, cursor string) (domain.Page, error)
	ListAll(ctx context.Context) (domain.CombinedListing, error)
}
