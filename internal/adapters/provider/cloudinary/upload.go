package cloudinary

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Upload sends a file to the auto upload endpoint, inside folder
func (a *Adapter) Upload(ctx context.Context, folder string, req domain.UploadRequest) (domain.UploadResult, error) {
	if err := a.CheckConfigured(); err != nil {
		return domain.UploadResult{}, err
	}

	params := uploader.UploadParams{
		AssetFolder:                    folder,
		UseAssetFolderAsPublicIDPrefix: api.Bool(true),
		UseFilename:                    api.Bool(true),
		UniqueFilename:                 api.Bool(true),
		FilenameOverride:               req.Filename,
	}
	if req.Kind == domain.MediaKindVideo {
		params.Transformation = domain.TransformationVideoUpload
	}

	res, err := a.cld.Upload.Upload(ctx, req.Body, params)
	if err != nil {
		return domain.UploadResult{}, fmt.Errorf("%w: upload failed: %w", domain.ErrUpstream, err)
	}
	if res.Error.Message != "" {
		return domain.UploadResult{}, fmt.Errorf("%w: upload failed: %s", domain.ErrUpstream, res.Error.Message)
	}

	a.logger.Debug("cloudinary upload done", "public_id", res.PublicID, "resource_type", res.ResourceType)

	return domain.UploadResult{
		Asset: domain.MediaAsset{
			PublicID:  res.PublicID,
			Kind:      domain.MediaKind(res.ResourceType),
			Format:    res.Format,
			SecureURL: res.SecureURL,
			CreatedAt: res.CreatedAt,
			Width:     res.Width,
			Height:    res.Height,
			Bytes:     int64(res.Bytes),
		},
		Bytes:            int64(res.Bytes),
		OriginalFilename: res.OriginalFilename,
	}, nil
}

// SignParameters signs the upload widget parameters with the API secret
func (a *Adapter) SignParameters(_ context.Context, params map[string]string) (string, error) {
	if err := a.CheckConfigured(); err != nil {
		return "", err
	}

	values := make(url.Values, len(params))
	for key, value := range params {
		values.Set(key, value)
	}

	signature, err := api.SignParameters(values, a.config.APISecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign parameters: %w", err)
	}
	return signature, nil
}

// PresignUpload is not offered: widget uploads are signed instead
func (a *Adapter) PresignUpload(_ context.Context, _ string, _ domain.MediaKind, filename string) (domain.DirectUpload, error) {
	return domain.DirectUpload{}, fmt.Errorf("%w: presigned upload of %s", domain.ErrUnsupported, strings.TrimSpace(filename))
}
