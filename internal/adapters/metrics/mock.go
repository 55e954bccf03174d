package metrics

import (
	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockRecorder is a mock implementation of MetricsRecorder
type MockRecorder struct {
	mock.Mock
}

func NewMockRecorder() *MockRecorder {
	return &MockRecorder{}
}

func (m *MockRecorder) ListingOutcome(kind domain.MediaKind, outcome domain.ListOutcome) {
	m.Called(kind, outcome)
}

func (m *MockRecorder) UploadOutcome(kind domain.MediaKind, success bool) {
	m.Called(kind, success)
}

func (m *MockRecorder) UsagePollFailed() {
	m.Called()
}

func (m *MockRecorder) ThumbnailRendered(success bool) {
	m.Called(success)
}

// NopRecorder discards every metric
type NopRecorder struct{}

func (NopRecorder) ListingOutcome(domain.MediaKind, domain.ListOutcome) {}
func (NopRecorder) UploadOutcome(domain.MediaKind, bool)                {}
func (NopRecorder) UsagePollFailed()                                    {}
func (NopRecorder) ThumbnailRendered(bool)                              {}
