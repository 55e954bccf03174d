package thumbnail

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRenderer is a mock implementation of ThumbnailRenderer
type MockRenderer struct {
	mock.Mock
}

func NewMockRenderer() *MockRenderer {
	return &MockRenderer{}
}

func (m *MockRenderer) RenderThumbnail(ctx context.Context, objectKey string) (string, error) {
	args := m.Called(ctx, objectKey)
	return args.String(0), args.Error(1)
}

func (m *MockRenderer) IsThumbnailKey(objectKey string) bool {
	args := m.Called(objectKey)
	return args.Bool(0)
}
