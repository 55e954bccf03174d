package usage

import (
	"log/slog"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/port"
)

type usageService struct {
	source port.UsageSource
	logger *slog.Logger
}

// NewUsageService creates a new usage reporting service
func NewUsageService(source port.UsageSource, logger *slog.Logger) port.UsageService {
	return &usageService{source: source, logger: logger}
}
