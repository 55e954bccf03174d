package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/disintegration/imaging"
	"github.com/minio/minio-go/v7"
)

// RenderThumbnail renders the grid thumbnail of an image already in the bucket and returns its key
func (a *Adapter) RenderThumbnail(ctx context.Context, objectKey string) (string, error) {
	object, err := a.client.GetObject(ctx, a.config.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to get object: %w", err)
	}
	defer object.Close()

	return a.putThumbnail(ctx, objectKey, object)
}

func (a *Adapter) putThumbnail(ctx context.Context, objectKey string, source io.Reader) (string, error) {
	img, err := imaging.Decode(source, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := imaging.Fill(img, domain.ThumbnailSize, domain.ThumbnailSize, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return "", fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	thumbKey := thumbnailKey(objectKey)
	_, err = a.client.PutObject(ctx, a.config.BucketName, thumbKey, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		return "", fmt.Errorf("failed to put thumbnail: %w", err)
	}

	a.logger.Info("thumbnail rendered", "object_key", objectKey, "thumbnail_key", thumbKey)
	return thumbKey, nil
}
