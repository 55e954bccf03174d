package domain

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// UploadRequest represents a single file sent through the server
type UploadRequest struct {
	Filename    string
	Kind        MediaKind
	Size        int64
	ContentType string
	Body        io.Reader
}

// Extension returns the lowercased file extension without the dot
func (r UploadRequest) Extension() string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(r.Filename), "."))
}

// Validate checks the kind and the extension against the accepted upload formats
func (r UploadRequest) Validate() error {
	if r.Kind != MediaKindImage && r.Kind != MediaKindVideo {
		return ErrInvalidMediaKind
	}
	if r.Body == nil {
		return ErrMissingFile
	}
	if !slices.Contains(UploadFormats[r.Kind], r.Extension()) {
		return ErrDisallowedFormat
	}
	return nil
}

// UploadResult is the asset created by an upload
type UploadResult struct {
	Asset            MediaAsset
	Bytes            int64
	OriginalFilename string
}

// DirectUpload is a presigned request letting a client upload straight to storage
type DirectUpload struct {
	PublicID  string
	URL       string
	Headers   map[string]string
	ExpiresAt time.Time
}
