package cloudinary

import (
	"fmt"
	"log/slog"

	"github.com/Charlelielataste/escoffier-gallery/internal/config"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/cloudinary/cloudinary-go/v2"
	cldconfig "github.com/cloudinary/cloudinary-go/v2/config"
)

// Adapter is an adapter for the Cloudinary search, upload and admin APIs
type Adapter struct {
	cld    *cloudinary.Cloudinary
	config config.CloudinaryConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter. Missing credentials are reported by CheckConfigured, not here.
func NewAdapter(cfg config.CloudinaryConfig, logger *slog.Logger) (*Adapter, error) {
	conf, err := cldconfig.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to build cloudinary configuration: %w", err)
	}
	if cfg.APIBaseURL != "" {
		conf.API.UploadPrefix = cfg.APIBaseURL
	}
	conf.URL.Analytics = false

	cld, err := cloudinary.NewFromConfiguration(*conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}

	return &Adapter{cld: cld, config: cfg, logger: logger}, nil
}

// Name returns the backend name
func (a *Adapter) Name() string {
	return "cloudinary"
}

// CheckConfigured fails when the cloud name, the API key or the API secret is missing
func (a *Adapter) CheckConfigured() error {
	if !a.config.Configured() {
		return fmt.Errorf("%w: cloudinary cloud name, api key and api secret are required", domain.ErrConfiguration)
	}
	return nil
}
