package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/minio/minio-go/v7"
)

// Upload stores the file under a newest-first key and renders the grid thumbnail of images
func (a *Adapter) Upload(ctx context.Context, folder string, req domain.UploadRequest) (domain.UploadResult, error) {
	if err := a.CheckConfigured(); err != nil {
		return domain.UploadResult{}, err
	}

	objectKey := a.newObjectKey(folder, req.Kind, req.Filename)
	contentType := req.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(req.Filename))
	}

	body := req.Body
	size := req.Size
	var raw []byte
	if req.Kind == domain.MediaKindImage {
		// images are small enough to be kept for the thumbnail
		var err error
		if raw, err = io.ReadAll(req.Body); err != nil {
			return domain.UploadResult{}, fmt.Errorf("failed to read upload body: %w", err)
		}
		body = bytes.NewReader(raw)
		size = int64(len(raw))
	}
	if size <= 0 {
		size = -1
	}

	info, err := a.client.PutObject(ctx, a.config.BucketName, objectKey, body, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"original-filename": req.Filename},
	})
	if err != nil {
		return domain.UploadResult{}, fmt.Errorf("%w: failed to put object: %w", domain.ErrUpstream, err)
	}

	asset := domain.MediaAsset{
		PublicID:  objectKey,
		Kind:      req.Kind,
		Format:    req.Extension(),
		CreatedAt: a.now(),
		Bytes:     info.Size,
	}
	if asset.SecureURL, err = a.objectURL(ctx, objectKey); err != nil {
		return domain.UploadResult{}, err
	}

	if raw != nil {
		thumbKey, err := a.putThumbnail(ctx, objectKey, bytes.NewReader(raw))
		if err != nil {
			// the listing falls back to a missing grid image, the upload itself succeeded
			a.logger.Warn("failed to render thumbnail", "object_key", objectKey, "error", err)
		} else if asset.GridURL, err = a.objectURL(ctx, thumbKey); err != nil {
			return domain.UploadResult{}, err
		}
	}

	return domain.UploadResult{Asset: asset, Bytes: info.Size, OriginalFilename: req.Filename}, nil
}

// PresignUpload returns a presigned PUT letting a client send the file straight to the bucket
func (a *Adapter) PresignUpload(ctx context.Context, folder string, kind domain.MediaKind, filename string) (domain.DirectUpload, error) {
	if err := a.CheckConfigured(); err != nil {
		return domain.DirectUpload{}, err
	}

	objectKey := a.newObjectKey(folder, kind, filename)

	requestHeaders := make(http.Header)
	if contentType := mime.TypeByExtension(path.Ext(filename)); contentType != "" {
		requestHeaders.Set("Content-Type", contentType)
	}
	requestHeaders.Set("x-amz-meta-original-filename", filename)

	presignedURL, err := a.client.PresignHeader(ctx, http.MethodPut, a.config.BucketName, objectKey, a.config.UploadPresignedDuration, nil, requestHeaders)
	if err != nil {
		return domain.DirectUpload{}, fmt.Errorf("%w: failed to generate pre-signed URL: %w", domain.ErrUpstream, err)
	}

	return domain.DirectUpload{
		PublicID:  objectKey,
		URL:       presignedURL.String(),
		Headers:   a.headerToMap(requestHeaders),
		ExpiresAt: a.now().Add(a.config.UploadPresignedDuration),
	}, nil
}
