package upload_test

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/config"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

const folder = "escoffier-event"

var defaultCfg = config.UploadConfig{
	ImageMaxFiles:      20,
	ImageMaxTotalBytes: 100 << 20,
	VideoMaxFiles:      5,
	VideoMaxTotalBytes: 1 << 30,
	SignatureMaxAge:    time.Hour,
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func file(name string, kind domain.MediaKind, size int64) domain.UploadRequest {
	return domain.UploadRequest{Filename: name, Kind: kind, Size: size, Body: strings.NewReader("content")}
}

func result(name string, size int64) domain.UploadResult {
	return domain.UploadResult{
		Asset:            domain.MediaAsset{PublicID: folder + "/" + name, Kind: domain.MediaKindImage},
		Bytes:            size,
		OriginalFilename: name,
	}
}
