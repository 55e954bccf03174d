package gallery

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

var (
	// ErrValidation is returned before any request is sent
	ErrValidation = errors.New("validation failed")
	// ErrNoFiles is returned for an empty batch
	ErrNoFiles = fmt.Errorf("%w: no files", ErrValidation)
	// ErrTooManyFiles is returned when a batch holds more files than its kind allows
	ErrTooManyFiles = fmt.Errorf("%w: too many files", ErrValidation)
	// ErrBatchTooLarge is returned when the known sizes of a batch exceed its kind's total
	ErrBatchTooLarge = fmt.Errorf("%w: batch too large", ErrValidation)
	// ErrDisallowedFormat is returned for an extension the kind does not accept
	ErrDisallowedFormat = fmt.Errorf("%w: disallowed format", ErrValidation)
)

// BatchLimits bounds a batch of uploads
type BatchLimits struct {
	MaxFiles      int
	MaxTotalBytes int64
}

// DefaultBatchLimits match the server defaults
var DefaultBatchLimits = map[Kind]BatchLimits{
	KindImage: {MaxFiles: 20, MaxTotalBytes: 100 << 20},
	KindVideo: {MaxFiles: 5, MaxTotalBytes: 1 << 30},
}

// UploadFormats are the extensions the server accepts, per kind
var UploadFormats = map[Kind][]string{
	KindImage: {"jpg", "jpeg", "png", "gif", "webp"},
	KindVideo: {"mp4", "mov", "avi", "webm", "mkv"},
}

// ValidateBatch checks the file count, the formats and the sizes known up front.
// Files with a zero Size are only bounded by the server.
func ValidateBatch(kind Kind, limits BatchLimits, files []File) error {
	if len(files) == 0 {
		return ErrNoFiles
	}
	if limits.MaxFiles > 0 && len(files) > limits.MaxFiles {
		return fmt.Errorf("%w: %d files, max %d", ErrTooManyFiles, len(files), limits.MaxFiles)
	}

	var total int64
	for _, file := range files {
		if err := validateFormat(kind, file.Name); err != nil {
			return err
		}
		total += file.Size
		if limits.MaxTotalBytes > 0 && total > limits.MaxTotalBytes {
			return fmt.Errorf("%w: %d bytes at %s, max %d", ErrBatchTooLarge, total, file.Name, limits.MaxTotalBytes)
		}
	}
	return nil
}

func validateFormat(kind Kind, name string) error {
	formats, ok := UploadFormats[kind]
	if !ok {
		return fmt.Errorf("%w: unknown media type %q", ErrValidation, kind)
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if !slices.Contains(formats, ext) {
		return fmt.Errorf("%w: %s", ErrDisallowedFormat, name)
	}
	return nil
}
