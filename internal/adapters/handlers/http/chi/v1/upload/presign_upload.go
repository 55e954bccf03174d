package upload

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

// V1PresignRequest describes the file a client wants to upload directly
type V1PresignRequest struct {
	Filename string `json:"filename"`
	Type     string `json:"type"`
}

// V1PresignResponse is a presigned upload
type V1PresignResponse struct {
	PublicID  string            `json:"public_id"`
	URL       string            `json:"url"`
	Headers   map[string]string `json:"headers"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// PresignUploadV1 returns a presigned PUT for a direct upload to storage
func (h *HandlerV1) PresignUploadV1(w http.ResponseWriter, r *http.Request) {
	var req V1PresignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, fmt.Errorf("%w: invalid request body: %w", domain.ErrValidation, err), "Presign failed")
		return
	}
	if req.Filename == "" {
		h.writeError(w, domain.ErrMissingFile, "Presign failed")
		return
	}

	kind, err := parseKind(req.Type)
	if err != nil {
		h.writeError(w, err, "Presign failed")
		return
	}

	upload, err := h.uploadService.PresignUpload(r.Context(), kind, req.Filename)
	if err != nil {
		h.writeError(w, err, "Presign failed")
		return
	}

	h.writeJSON(w, http.StatusOK, V1PresignResponse{
		PublicID:  upload.PublicID,
		URL:       upload.URL,
		Headers:   upload.Headers,
		ExpiresAt: upload.ExpiresAt,
	})
}
