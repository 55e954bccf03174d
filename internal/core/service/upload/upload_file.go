package upload

import (
	"context"
	"errors"
	"fmt"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

func (u *uploadService) Upload(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error) {
	if err := req.Validate(); err != nil {
		return domain.UploadResult{}, err
	}

	result, err := u.uploader.Upload(ctx, u.folder, req)
	u.metrics.UploadOutcome(req.Kind, err == nil)
	if err != nil {
		u.logger.Error("failed to upload file", "filename", req.Filename, "kind", req.Kind, "error", err)
		if errors.Is(err, domain.ErrUpstream) || errors.Is(err, domain.ErrConfiguration) {
			return domain.UploadResult{}, err
		}
		return domain.UploadResult{}, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}

	if result.OriginalFilename == "" {
		result.OriginalFilename = req.Filename
	}
	u.logger.Info("file uploaded", "public_id", result.Asset.PublicID, "kind", req.Kind, "bytes", result.Bytes)
	return result, nil
}
