package media_test

import (
	"io"
	"log/slog"

	"github.com/Charlelielataste/escoffier-gallery/internal/config"
)

const folder = "escoffier-event"

var defaultCfg = config.ListingConfig{
	ImagePageSize: 8,
	VideoPageSize: 4,
	CombinedSize:  500,
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
