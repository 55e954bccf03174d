package media

import (
	"log/slog"
	"strings"

	"github.com/Charlelielataste/escoffier-gallery/internal/config"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/port"
)

type mediaService struct {
	catalog port.MediaCatalog
	metrics port.MetricsRecorder
	folder  string
	cfg     config.ListingConfig
	logger  *slog.Logger
}

// NewMediaService creates a new media listing service scoped to folder
func NewMediaService(catalog port.MediaCatalog, metrics port.MetricsRecorder, folder string, cfg config.ListingConfig, logger *slog.Logger) port.MediaService {
	return &mediaService{
		catalog: catalog,
		metrics: metrics,
		folder:  folder,
		cfg:     cfg,
		logger:  logger,
	}
}

func (m *mediaService) query(kind domain.MediaKind, size int, cursor string) domain.SearchQuery {
	return domain.SearchQuery{
		Folder:     m.folder,
		Kind:       kind,
		MaxResults: size,
		Cursor:     cursor,
		Delivery:   domain.DeliveryOptions{FullSize: m.cfg.ImageFullURL},
	}
}

// filterAssets drops results the search expression should never have returned:
// another resource type, a format of the other kind, or an asset outside the folder.
func filterAssets(folder string, kind domain.MediaKind, assets []domain.MediaAsset) []domain.MediaAsset {
	prefix := folder + "/"
	kept := make([]domain.MediaAsset, 0, len(assets))
	for _, asset := range assets {
		if asset.Kind != kind {
			continue
		}
		if domain.ContradictsKind(kind, asset.Format) {
			continue
		}
		if !strings.HasPrefix(asset.PublicID, prefix) {
			continue
		}
		kept = append(kept, asset)
	}
	return kept
}
