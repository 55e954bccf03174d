package usage

import (
	"context"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockUsageService is a mock implementation of UsageService
type MockUsageService struct {
	mock.Mock
}

// NewMockUsageService creates a new MockUsageService
func NewMockUsageService() *MockUsageService {
	return &MockUsageService{}
}

func (m *MockUsageService) GetUsage(ctx context.Context) (domain.UsageSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.UsageSnapshot), args.Error(1)
}

// MockBroadcaster is a mock implementation of UsageBroadcaster
type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) BroadcastUsage(snapshot domain.UsageSnapshot) {
	m.Called(snapshot)
}
