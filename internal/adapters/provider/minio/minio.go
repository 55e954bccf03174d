package minio

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/config"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// thumbsDir holds the rendered grid thumbnails, beside the kind directories
const thumbsDir = "_thumbs"

// Adapter is a media provider backed by a MinIO bucket.
// Objects are stored as <folder>/<kind>/<inverted timestamp>_<uuid><ext> so that a plain
// lexicographic listing returns the newest object first.
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	folder string
	logger *slog.Logger
	now    func() time.Time
}

// NewAdapter returns Adapter. Usage is accounted under folder only, the bucket may be shared.
func NewAdapter(ctx context.Context, cfg config.MinioConfig, folder string, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, folder: folder, logger: logger, now: time.Now}, nil
}

// Name returns the backend name
func (a *Adapter) Name() string {
	return "minio"
}

// CheckConfigured fails when the endpoint or the keys are missing
func (a *Adapter) CheckConfigured() error {
	if !a.config.Configured() {
		return fmt.Errorf("%w: minio endpoint, access key and secret key are required", domain.ErrConfiguration)
	}
	return nil
}

// SignParameters is not offered: direct uploads use presigned URLs instead
func (a *Adapter) SignParameters(_ context.Context, _ map[string]string) (string, error) {
	return "", fmt.Errorf("%w: parameter signing", domain.ErrUnsupported)
}

func kindPrefix(folder string, kind domain.MediaKind) string {
	return path.Join(folder, string(kind)) + "/"
}

// newObjectKey returns a key sorting before every key generated earlier
func (a *Adapter) newObjectKey(folder string, kind domain.MediaKind, filename string) string {
	inverted := math.MaxInt64 - a.now().UnixNano()
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s%019d_%s%s", kindPrefix(folder, kind), inverted, uuid.NewString(), ext)
}

// thumbnailKey maps <folder>/<kind>/<name>.<ext> to <folder>/_thumbs/<kind>/<name>.jpg
func thumbnailKey(objectKey string) string {
	dir, file := path.Split(objectKey)
	kindDir := path.Base(dir)
	folder := path.Dir(path.Clean(dir))
	name := strings.TrimSuffix(file, path.Ext(file))
	return path.Join(folder, thumbsDir, kindDir, name+"."+domain.PosterFormat)
}

// IsThumbnailKey reports whether the key points to a rendered thumbnail
func (a *Adapter) IsThumbnailKey(objectKey string) bool {
	return strings.Contains(objectKey, "/"+thumbsDir+"/")
}

// objectURL returns the public URL of an object, or a presigned GET when the bucket is private
func (a *Adapter) objectURL(ctx context.Context, objectKey string) (string, error) {
	if a.config.PublicBaseURL != "" {
		return strings.TrimRight(a.config.PublicBaseURL, "/") + "/" + objectKey, nil
	}

	presignedURL, err := a.client.PresignedGetObject(ctx, a.config.BucketName, objectKey, a.config.DownloadSignedURLDuration, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned download URL: %w", err)
	}
	return presignedURL.String(), nil
}

func (a *Adapter) headerToMap(headers http.Header) map[string]string {
	result := make(map[string]string)
	for key, values := range headers {
		if len(values) > 0 {
			result[key] = values[0]
		}
	}
	return result
}
