package provider

import (
	"context"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of MediaProvider
type MockProvider struct {
	mock.Mock
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) Search(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.SearchResult), args.Error(1)
}

func (m *MockProvider) Upload(ctx context.Context, folder string, req domain.UploadRequest) (domain.UploadResult, error) {
	args := m.Called(ctx, folder, req)
	return args.Get(0).(domain.UploadResult), args.Error(1)
}

func (m *MockProvider) SignParameters(ctx context.Context, params map[string]string) (string, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) PresignUpload(ctx context.Context, folder string, kind domain.MediaKind, filename string) (domain.DirectUpload, error) {
	args := m.Called(ctx, folder, kind, filename)
	return args.Get(0).(domain.DirectUpload), args.Error(1)
}

func (m *MockProvider) CheckConfigured() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockProvider) Usage(ctx context.Context) (domain.UsageCounters, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.UsageCounters), args.Error(1)
}
