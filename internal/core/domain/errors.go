package domain

import (
	"errors"
	"fmt"
)

// ErrConfiguration is an error thrown when provider credentials are missing
var ErrConfiguration = errors.New("provider configuration missing")

// ErrUpstream is an error thrown when the provider call failed or returned malformed data
var ErrUpstream = errors.New("provider call failed")

// ErrNoUsageData is an error thrown when the provider returned no usage data
var ErrNoUsageData = errors.New("no usage data returned")

// ErrUnsupported is an error thrown when the selected provider cannot serve an operation
var ErrUnsupported = errors.New("operation not supported by provider")

// ErrValidation is the parent of every client side validation error
var ErrValidation = errors.New("validation failed")

// ErrInvalidMediaKind is an error thrown when the media kind is neither image nor video
var ErrInvalidMediaKind = fmt.Errorf("%w: invalid media kind", ErrValidation)

// ErrInvalidCursor is an error thrown when a cursor was not issued for the requested listing
var ErrInvalidCursor = fmt.Errorf("%w: invalid cursor", ErrValidation)

// ErrDisallowedFormat is an error thrown when the file extension is not accepted for the kind
var ErrDisallowedFormat = fmt.Errorf("%w: file format not allowed", ErrValidation)

// ErrFileCountExceeded is an error thrown when a batch holds too many files
var ErrFileCountExceeded = fmt.Errorf("%w: too many files", ErrValidation)

// ErrBatchSizeExceeded is an error thrown when a batch exceeds its cumulative size
var ErrBatchSizeExceeded = fmt.Errorf("%w: batch size limit exceeded", ErrValidation)

// ErrMissingFile is an error thrown when no file was provided
var ErrMissingFile = fmt.Errorf("%w: no file provided", ErrValidation)

// ErrStaleSignature is an error thrown when the parameters to sign carry no recent timestamp
var ErrStaleSignature = fmt.Errorf("%w: missing or stale timestamp", ErrValidation)

// ErrFolderMismatch is an error thrown when an upload targets another folder
var ErrFolderMismatch = fmt.Errorf("%w: folder mismatch", ErrValidation)

// PartialFailureError is returned when a batch aborted after some files were uploaded.
// The uploaded files are kept. A file is either in Uploaded or named by FailedFile, never both:
// when an uploaded file crosses the size limit it is named by ExceededAfter and FailedFile is
// the first file that was not attempted, empty if it was the last one.
type PartialFailureError struct {
	Uploaded      []UploadResult
	FailedFile    string
	ExceededAfter string
	Err           error
}

func (e *PartialFailureError) Error() string {
	if e.ExceededAfter != "" {
		return fmt.Sprintf("batch aborted after %q, %d uploaded file(s): %v", e.ExceededAfter, len(e.Uploaded), e.Err)
	}
	return fmt.Sprintf("batch aborted at %q after %d uploaded file(s): %v", e.FailedFile, len(e.Uploaded), e.Err)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}
