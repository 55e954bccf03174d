package upload

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

// SignParameters signs the upload widget parameters once the timestamp and the folder are checked
func (u *uploadService) SignParameters(ctx context.Context, params map[string]string) (string, error) {
	raw, ok := params["timestamp"]
	if !ok || raw == "" {
		return "", domain.ErrStaleSignature
	}
	timestamp, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrStaleSignature, err)
	}
	age := time.Since(time.Unix(timestamp, 0))
	if age > u.signatureMaxAge || age < -u.signatureMaxAge {
		return "", domain.ErrStaleSignature
	}

	for _, key := range []string{"folder", "asset_folder"} {
		if folder, ok := params[key]; ok && folder != u.folder {
			return "", domain.ErrFolderMismatch
		}
	}

	return u.uploader.SignParameters(ctx, params)
}
