package upload

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/handlers/http/dto"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

// V1UploadBatchResponse is the response of a batch upload
type V1UploadBatchResponse struct {
	Success bool                `json:"success"`
	Data    []dto.UploadedAsset `json:"data"`
}

// V1PartialFailureResponse reports a batch aborted after some files were uploaded
type V1PartialFailureResponse struct {
	Error         string              `json:"error"`
	Uploaded      []dto.UploadedAsset `json:"uploaded"`
	FailedFile    string              `json:"failedFile,omitempty"`
	ExceededAfter string              `json:"exceededAfter,omitempty"`
}

// UploadBatchV1 uploads the multipart "files" (or "files[]") fields in order
func (h *HandlerV1) UploadBatchV1(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		h.writeError(w, parseError(err), "Batch upload failed")
		return
	}
	defer r.MultipartForm.RemoveAll()

	kind, err := parseKind(r.FormValue("type"))
	if err != nil {
		h.writeError(w, err, "Batch upload failed")
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		headers = r.MultipartForm.File["files[]"]
	}

	files := make([]domain.UploadRequest, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll(files)
			h.writeError(w, err, "Batch upload failed")
			return
		}
		files = append(files, domain.UploadRequest{
			Filename:    header.Filename,
			Kind:        kind,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		})
	}
	defer closeAll(files)

	result, err := h.uploadService.UploadBatch(r.Context(), kind, files)
	if err != nil {
		var partial *domain.PartialFailureError
		if errors.As(err, &partial) {
			h.logger.Warn("batch upload aborted",
				"kind", kind,
				"uploaded", len(partial.Uploaded),
				"failed_file", partial.FailedFile,
				"exceeded_after", partial.ExceededAfter,
				"error", partial.Err,
			)
			h.writeJSON(w, errorStatus(err), V1PartialFailureResponse{
				Error:         errorMessage(partial.Err, "Batch upload failed"),
				Uploaded:      dto.NewUploadedAssets(partial.Uploaded),
				FailedFile:    partial.FailedFile,
				ExceededAfter: partial.ExceededAfter,
			})
			return
		}
		h.writeError(w, err, "Batch upload failed")
		return
	}

	h.writeJSON(w, http.StatusOK, V1UploadBatchResponse{
		Success: true,
		Data:    dto.NewUploadedAssets(result.Uploaded),
	})
}

func closeAll(files []domain.UploadRequest) {
	for _, file := range files {
		if f, ok := file.Body.(multipart.File); ok {
			_ = f.Close()
		}
	}
}
