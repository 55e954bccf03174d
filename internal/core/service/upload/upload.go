package upload

import (
	"log/slog"
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/config"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/port"
)

type uploadService struct {
	uploader        port.MediaUploader
	metrics         port.MetricsRecorder
	folder          string
	limits          map[domain.MediaKind]domain.BatchLimits
	signatureMaxAge time.Duration
	logger          *slog.Logger
}

// NewUploadService creates a new upload service placing every asset in folder
func NewUploadService(uploader port.MediaUploader, metrics port.MetricsRecorder, folder string, cfg config.UploadConfig, logger *slog.Logger) port.UploadService {
	return &uploadService{
		uploader:        uploader,
		metrics:         metrics,
		folder:          folder,
		limits:          cfg.BatchLimits(),
		signatureMaxAge: cfg.SignatureMaxAge,
		logger:          logger,
	}
}
