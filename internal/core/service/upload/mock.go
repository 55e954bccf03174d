package upload

import (
	"context"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

// NewMockUploadService creates a new MockUploadService
func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

func (m *MockUploadService) Upload(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.UploadResult), args.Error(1)
}

func (m *MockUploadService) UploadBatch(ctx context.Context, kind domain.MediaKind, files []domain.UploadRequest) (domain.BatchResult, error) {
	args := m.Called(ctx, kind, files)
	return args.Get(0).(domain.BatchResult), args.Error(1)
}

func (m *MockUploadService) SignParameters(ctx context.Context, params map[string]string) (string, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Error(1)
}

func (m *MockUploadService) PresignUpload(ctx context.Context, kind domain.MediaKind, filename string) (domain.DirectUpload, error) {
	args := m.Called(ctx, kind, filename)
	return args.Get(0).(domain.DirectUpload), args.Error(1)
}
