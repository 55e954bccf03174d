package upload

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

func (u *uploadService) PresignUpload(ctx context.Context, kind domain.MediaKind, filename string) (domain.DirectUpload, error) {
	formats, ok := domain.UploadFormats[kind]
	if !ok {
		return domain.DirectUpload{}, domain.ErrInvalidMediaKind
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !slices.Contains(formats, ext) {
		return domain.DirectUpload{}, domain.ErrDisallowedFormat
	}

	return u.uploader.PresignUpload(ctx, u.folder, kind, filename)
}
