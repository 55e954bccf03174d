package port

import "github.com/Charlelielataste/escoffier-gallery/internal/core/domain"

// MetricsRecorder is an interface to record business metrics
type MetricsRecorder interface {
	ListingOutcome(kind domain.MediaKind, outcome domain.ListOutcome)
	UploadOutcome(kind domain.MediaKind, success bool)
	UsagePollFailed()
	ThumbnailRendered(success bool)
}
