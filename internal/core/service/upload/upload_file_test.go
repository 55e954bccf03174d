package upload_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/metrics"
	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/provider"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/service/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUploadService_Upload_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockProvider := provider.NewMockProvider()
	mockMetrics := metrics.NewMockRecorder()
	service := upload.NewUploadService(mockProvider, mockMetrics, folder, defaultCfg, discardLogger)
	req := file("dish.jpg", domain.MediaKindImage, 1024)

	mockProvider.On("Upload", ctx, folder, req).Return(result("dish", 1024), nil)
	mockMetrics.On("UploadOutcome", domain.MediaKindImage, true).Return()

	// Act
	res, err := service.Upload(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, folder+"/dish", res.Asset.PublicID)
	assert.Equal(t, int64(1024), res.Bytes)
	mockProvider.AssertExpectations(t)
	mockMetrics.AssertExpectations(t)
}

func TestUploadService_Upload_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("error - disallowed format", func(t *testing.T) {
		// Arrange
		mockProvider := provider.NewMockProvider()
		service := upload.NewUploadService(mockProvider, metrics.NopRecorder{}, folder, defaultCfg, discardLogger)

		// Act
		_, err := service.Upload(ctx, file("menu.pdf", domain.MediaKindImage, 10))

		// Assert
		assert.ErrorIs(t, err, domain.ErrDisallowedFormat)
		mockProvider.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error - provider failure wraps upstream", func(t *testing.T) {
		// Arrange
		cause := errors.New("timeout")
		mockProvider := provider.NewMockProvider()
		mockMetrics := metrics.NewMockRecorder()
		service := upload.NewUploadService(mockProvider, mockMetrics, folder, defaultCfg, discardLogger)
		mockProvider.On("Upload", ctx, folder, mock.Anything).Return(domain.UploadResult{}, cause)
		mockMetrics.On("UploadOutcome", domain.MediaKindVideo, false).Return()

		// Act
		_, err := service.Upload(ctx, file("toast.mp4", domain.MediaKindVideo, 10))

		// Assert
		assert.ErrorIs(t, err, domain.ErrUpstream)
		assert.ErrorIs(t, err, cause)
		mockMetrics.AssertExpectations(t)
	})
}
