package domain

import "fmt"

// BatchLimits bounds a multi-file upload
type BatchLimits struct {
	MaxFiles      int
	MaxTotalBytes int64
}

// DefaultBatchLimits are the per kind limits offered by the upload widget
var DefaultBatchLimits = map[MediaKind]BatchLimits{
	MediaKindImage: {MaxFiles: 20, MaxTotalBytes: 100 << 20},
	MediaKindVideo: {MaxFiles: 5, MaxTotalBytes: 1 << 30},
}

// BatchAccumulator tracks what a batch has uploaded so far.
// It is a value: Add returns a new accumulator and never mutates the receiver.
type BatchAccumulator struct {
	Limits     BatchLimits
	Files      int
	TotalBytes int64
}

// NewBatchAccumulator returns an empty accumulator
func NewBatchAccumulator(limits BatchLimits) BatchAccumulator {
	return BatchAccumulator{Limits: limits}
}

// Admit validates the number of files before anything is uploaded
func (a BatchAccumulator) Admit(count int) error {
	if count == 0 {
		return ErrMissingFile
	}
	if a.Limits.MaxFiles > 0 && count > a.Limits.MaxFiles {
		return fmt.Errorf("%w: %d files, max %d", ErrFileCountExceeded, count, a.Limits.MaxFiles)
	}
	return nil
}

// Add accounts for one more uploaded file of the given size
func (a BatchAccumulator) Add(size int64) (BatchAccumulator, error) {
	total := a.TotalBytes + size
	if a.Limits.MaxTotalBytes > 0 && total > a.Limits.MaxTotalBytes {
		return a, fmt.Errorf("%w: %d bytes, max %d", ErrBatchSizeExceeded, total, a.Limits.MaxTotalBytes)
	}
	return BatchAccumulator{Limits: a.Limits, Files: a.Files + 1, TotalBytes: total}, nil
}

// BatchResult is the outcome of a fully successful batch
type BatchResult struct {
	Uploaded   []UploadResult
	TotalBytes int64
}
