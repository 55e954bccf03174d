package upload

import (
	"context"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

// UploadBatch uploads files one after the other and stops at the first error.
// Files uploaded before the failure are kept and reported in a PartialFailureError.
func (u *uploadService) UploadBatch(ctx context.Context, kind domain.MediaKind, files []domain.UploadRequest) (domain.BatchResult, error) {
	limits, ok := u.limits[kind]
	if !ok {
		return domain.BatchResult{}, domain.ErrInvalidMediaKind
	}

	acc := domain.NewBatchAccumulator(limits)
	if err := acc.Admit(len(files)); err != nil {
		return domain.BatchResult{}, err
	}

	uploaded := make([]domain.UploadResult, 0, len(files))
	for i, file := range files {
		file.Kind = kind

		// declared size first, so an oversized file is never sent
		if _, err := acc.Add(file.Size); err != nil {
			return u.abort(uploaded, file.Filename, err)
		}

		result, err := u.Upload(ctx, file)
		if err != nil {
			return u.abort(uploaded, file.Filename, err)
		}
		uploaded = append(uploaded, result)

		size := result.Bytes
		if size == 0 {
			size = file.Size
		}
		if acc, err = acc.Add(size); err != nil {
			// the provider reported more than declared: this file stays uploaded
			next := ""
			if i+1 < len(files) {
				next = files[i+1].Filename
			}
			u.logger.Warn("batch size exceeded after upload", "file", file.Filename, "bytes", size)
			return domain.BatchResult{}, &domain.PartialFailureError{
				Uploaded:      uploaded,
				FailedFile:    next,
				ExceededAfter: file.Filename,
				Err:           err,
			}
		}
	}

	return domain.BatchResult{Uploaded: uploaded, TotalBytes: acc.TotalBytes}, nil
}

func (u *uploadService) abort(uploaded []domain.UploadResult, failedFile string, err error) (domain.BatchResult, error) {
	u.logger.Warn("batch aborted", "failed_file", failedFile, "uploaded", len(uploaded), "error", err)
	if len(uploaded) == 0 {
		return domain.BatchResult{}, err
	}
	return domain.BatchResult{}, &domain.PartialFailureError{
		Uploaded:   uploaded,
		FailedFile: failedFile,
		Err:        err,
	}
}
