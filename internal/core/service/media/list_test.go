package media_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/metrics"
	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/provider"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/service/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func image(id, format string) domain.MediaAsset {
	return domain.MediaAsset{PublicID: id, Kind: domain.MediaKindImage, Format: format}
}

func video(id, format string) domain.MediaAsset {
	return domain.MediaAsset{PublicID: id, Kind: domain.MediaKindVideo, Format: format}
}

func TestMediaService_List_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockProvider := provider.NewMockProvider()
	mockMetrics := metrics.NewMockRecorder()
	service := media.NewMediaService(mockProvider, mockMetrics, folder, defaultCfg, discardLogger)

	expectedQuery := domain.SearchQuery{Folder: folder, Kind: domain.MediaKindImage, MaxResults: 8}
	mockProvider.On("Search", ctx, expectedQuery).Return(domain.SearchResult{
		Assets:     []domain.MediaAsset{image(folder+"/a", "jpg"), image(folder+"/b", "png")},
		NextCursor: "next",
	}, nil)
	mockMetrics.On("ListingOutcome", domain.MediaKindImage, domain.OutcomeOK).Return()

	// Act
	page, err := service.List(ctx, domain.MediaKindImage, "")

	// Assert
	require.NoError(t, err)
	assert.Len(t, page.Assets, 2)
	assert.True(t, page.HasMore)
	assert.NotEmpty(t, page.NextCursor)
	assert.Equal(t, domain.OutcomeOK, page.Outcome)
	mockProvider.AssertExpectations(t)
	mockMetrics.AssertExpectations(t)
}

func TestMediaService_List_VideoPageSize(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockProvider := provider.NewMockProvider()
	service := media.NewMediaService(mockProvider, metrics.NopRecorder{}, folder, defaultCfg, discardLogger)

	mockProvider.On("Search", ctx, mock.MatchedBy(func(q domain.SearchQuery) bool {
		return q.Kind == domain.MediaKindVideo && q.MaxResults == 4
	})).Return(domain.SearchResult{}, nil)

	// Act
	_, err := service.List(ctx, domain.MediaKindVideo, "")

	// Assert
	require.NoError(t, err)
	mockProvider.AssertExpectations(t)
}

func TestMediaService_List_CursorIsForwarded(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockProvider := provider.NewMockProvider()
	service := media.NewMediaService(mockProvider, metrics.NopRecorder{}, folder, defaultCfg, discardLogger)

	mockProvider.On("Search", ctx, domain.SearchQuery{Folder: folder, Kind: domain.MediaKindImage, MaxResults: 8}).
		Return(domain.SearchResult{Assets: []domain.MediaAsset{image(folder+"/a", "jpg")}, NextCursor: "provider-2"}, nil).Once()
	mockProvider.On("Search", ctx, domain.SearchQuery{Folder: folder, Kind: domain.MediaKindImage, MaxResults: 8, Cursor: "provider-2"}).
		Return(domain.SearchResult{Assets: []domain.MediaAsset{image(folder+"/b", "jpg")}}, nil).Twice()

	first, err := service.List(ctx, domain.MediaKindImage, "")
	require.NoError(t, err)

	// Act
	second, err := service.List(ctx, domain.MediaKindImage, first.NextCursor)
	require.NoError(t, err)
	again, err := service.List(ctx, domain.MediaKindImage, first.NextCursor)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, second, again)
	assert.False(t, second.HasMore)
	assert.Empty(t, second.NextCursor)
	mockProvider.AssertExpectations(t)
}

func TestMediaService_List_FiltersForeignAssets(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockProvider := provider.NewMockProvider()
	service := media.NewMediaService(mockProvider, metrics.NopRecorder{}, folder, defaultCfg, discardLogger)

	mockProvider.On("Search", ctx, mock.Anything).Return(domain.SearchResult{
		Assets: []domain.MediaAsset{
			video(folder+"/clip", "mp4"),
			video(folder+"/still", "jpg"),
			image(folder+"/wrong-kind", "jpg"),
			video("other-event/clip", "mov"),
			video(folder+"-archive/clip", "mov"),
		},
	}, nil)

	// Act
	page, err := service.List(ctx, domain.MediaKindVideo, "")

	// Assert
	require.NoError(t, err)
	require.Len(t, page.Assets, 1)
	assert.Equal(t, folder+"/clip", page.Assets[0].PublicID)
	for _, asset := range page.Assets {
		assert.Equal(t, domain.MediaKindVideo, asset.Kind)
		assert.True(t, strings.HasPrefix(asset.PublicID, folder+"/"))
		assert.False(t, domain.ContradictsKind(domain.MediaKindVideo, asset.Format))
	}
}

func TestMediaService_List_EmptyFolder(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockProvider := provider.NewMockProvider()
	mockMetrics := metrics.NewMockRecorder()
	service := media.NewMediaService(mockProvider, mockMetrics, folder, defaultCfg, discardLogger)

	mockProvider.On("Search", ctx, mock.Anything).Return(domain.SearchResult{}, nil)
	mockMetrics.On("ListingOutcome", domain.MediaKindImage, domain.OutcomeEmpty).Return()

	// Act
	page, err := service.List(ctx, domain.MediaKindImage, "")

	// Assert
	require.NoError(t, err)
	assert.Empty(t, page.Assets)
	assert.NotNil(t, page.Assets)
	assert.Empty(t, page.NextCursor)
	assert.False(t, page.HasMore)
	assert.Equal(t, domain.OutcomeEmpty, page.Outcome)
	mockMetrics.AssertExpectations(t)
}

func TestMediaService_List_UpstreamFailure(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockProvider := provider.NewMockProvider()
	mockMetrics := metrics.NewMockRecorder()
	service := media.NewMediaService(mockProvider, mockMetrics, folder, defaultCfg, discardLogger)

	mockProvider.On("Search", ctx, mock.Anything).Return(domain.SearchResult{}, errors.New("provider down"))
	mockMetrics.On("ListingOutcome", domain.MediaKindImage, domain.OutcomeUpstreamFailed).Return()

	// Act
	page, err := service.List(ctx, domain.MediaKindImage, "")

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, page.Assets)
	assert.Empty(t, page.Assets)
	assert.False(t, page.HasMore)
	assert.Equal(t, domain.OutcomeUpstreamFailed, page.Outcome)
	mockMetrics.AssertExpectations(t)
}

func TestMediaService_List_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("error - cursor issued for another kind", func(t *testing.T) {
		// Arrange
		mockProvider := provider.NewMockProvider()
		service := media.NewMediaService(mockProvider, metrics.NopRecorder{}, folder, defaultCfg, discardLogger)
		cursor := domain.EncodeCursor(folder, domain.MediaKindVideo, "token")

		// Act
		_, err := service.List(ctx, domain.MediaKindImage, cursor)

		// Assert
		assert.ErrorIs(t, err, domain.ErrInvalidCursor)
		mockProvider.AssertNotCalled(t, "Search")
	})

	t.Run("error - invalid kind", func(t *testing.T) {
		// Arrange
		mockProvider := provider.NewMockProvider()
		service := media.NewMediaService(mockProvider, metrics.NopRecorder{}, folder, defaultCfg, discardLogger)

		// Act
		_, err := service.List(ctx, "raw", "")

		// Assert
		assert.ErrorIs(t, err, domain.ErrInvalidMediaKind)
		mockProvider.AssertNotCalled(t, "Search")
	})
}
