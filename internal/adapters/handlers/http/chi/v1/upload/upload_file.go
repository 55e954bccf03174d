package upload

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/handlers/http/dto"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

// V1UploadResponse is the response of a single file upload
type V1UploadResponse struct {
	Success bool              `json:"success"`
	Data    dto.UploadedAsset `json:"data"`
}

// UploadFileV1 uploads the multipart "file" field
func (h *HandlerV1) UploadFileV1(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		h.writeError(w, parseError(err), "Upload failed")
		return
	}
	defer r.MultipartForm.RemoveAll()

	kind, err := parseKind(r.FormValue("type"))
	if err != nil {
		h.writeError(w, err, "Upload failed")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, domain.ErrMissingFile, "Upload failed")
		return
	}
	defer file.Close()

	result, err := h.uploadService.Upload(r.Context(), domain.UploadRequest{
		Filename:    header.Filename,
		Kind:        kind,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		h.writeError(w, err, "Upload failed")
		return
	}

	h.writeJSON(w, http.StatusOK, V1UploadResponse{
		Success: true,
		Data:    dto.NewUploadedAsset(result),
	})
}

// parseError keeps body limit errors and turns anything else into a validation error
func parseError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return err
	}
	return fmt.Errorf("%w: invalid multipart form: %w", domain.ErrValidation, err)
}
