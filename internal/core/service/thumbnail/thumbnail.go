package thumbnail

import (
	"log/slog"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/port"
)

type thumbnailService struct {
	renderer port.ThumbnailRenderer
	metrics  port.MetricsRecorder
	folder   string
	logger   *slog.Logger
}

// NewThumbnailService creates a bucket notification handler rendering grid thumbnails
// for images uploaded straight to storage
func NewThumbnailService(renderer port.ThumbnailRenderer, metrics port.MetricsRecorder, folder string, logger *slog.Logger) port.MessageService {
	return &thumbnailService{
		renderer: renderer,
		metrics:  metrics,
		folder:   folder,
		logger:   logger,
	}
}
