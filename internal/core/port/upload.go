package port

import (
	"context"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

// MediaUploader is an interface to define provider upload interactions
type MediaUploader interface {
	Upload(ctx context.Context, folder string, req domain.UploadRequest) (domain.UploadResult, error)
	SignParameters(ctx context.Context, params map[string]string) (string, error)
	PresignUpload(ctx context.Context, folder string, kind domain.MediaKind, filename string) (domain.DirectUpload, error)
}

// UploadService is an interface to define the upload orchestration service
type UploadService interface {
	Upload(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error)
	UploadBatch(ctx context.Context, kind domain.MediaKind, files []domain.UploadRequest) (domain.BatchResult, error)
	SignParameters(ctx context.Context, params map[string]string) (string, error)
	PresignUpload(ctx context.Context, kind domain.MediaKind, filename string) (domain.DirectUpload, error)
}
