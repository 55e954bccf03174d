package media

import (
	"context"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockMediaService is a mock implementation of MediaService
type MockMediaService struct {
	mock.Mock
}

// NewMockMediaService creates a new MockMediaService
func NewMockMediaService() *MockMediaService {
	return &MockMediaService{}
}

func (m *MockMediaService) List(ctx context.Context, kind domain.MediaKind, cursor string) (domain.Page, error) {
	args := m.Called(ctx, kind, cursor)
	return args.Get(0).(domain.Page), args.Error(1)
}

func (m *MockMediaService) ListAll(ctx context.Context) (domain.CombinedListing, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CombinedListing), args.Error(1)
}
