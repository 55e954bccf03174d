package thumbnail_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/Charlelielataste/escoffier-gallery/internal/adapters/metrics"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/Charlelielataste/escoffier-gallery/internal/core/service/thumbnail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const folder = "escoffier-event"

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func bucketEvent(eventName, key string) []byte {
	return []byte(fmt.Sprintf(`{
		"EventName": %q,
		"Key": "gallery/%s",
		"Records": [{
			"eventName": %q,
			"s3": {
				"bucket": {"name": "gallery"},
				"object": {"key": %q, "size": 2048, "contentType": "image/jpeg"}
			}
		}]
	}`, eventName, key, eventName, key))
}

func TestThumbnailService_HandleMessage_RendersImage(t *testing.T) {
	// Arrange
	ctx := context.Background()
	renderer := thumbnail.NewMockRenderer()
	recorder := metrics.NewMockRecorder()
	service := thumbnail.NewThumbnailService(renderer, recorder, folder, discardLogger)

	key := "escoffier-event/image/0001_abc.jpg"
	renderer.On("IsThumbnailKey", key).Return(false)
	renderer.On("RenderThumbnail", ctx, key).Return("escoffier-event/_thumbs/image/0001_abc.jpg", nil)
	recorder.On("ThumbnailRendered", true).Return()

	// Act
	err := service.HandleMessage(ctx, bucketEvent("s3:ObjectCreated:Put", "escoffier-event%2Fimage%2F0001_abc.jpg"))

	// Assert
	require.NoError(t, err)
	renderer.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestThumbnailService_HandleMessage_Skips(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		eventName string
		key       string
		thumbnail bool
	}{
		{name: "removed object", eventName: "s3:ObjectRemoved:Delete", key: "escoffier-event/image/1.jpg"},
		{name: "thumbnail", eventName: "s3:ObjectCreated:Put", key: "escoffier-event/_thumbs/image/1.jpg", thumbnail: true},
		{name: "video", eventName: "s3:ObjectCreated:Put", key: "escoffier-event/video/1.mp4"},
		{name: "other folder", eventName: "s3:ObjectCreated:Put", key: "private/image/1.jpg"},
		{name: "video format tagged image", eventName: "s3:ObjectCreated:Put", key: "escoffier-event/image/1.mov"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			renderer := thumbnail.NewMockRenderer()
			service := thumbnail.NewThumbnailService(renderer, metrics.NopRecorder{}, folder, discardLogger)
			renderer.On("IsThumbnailKey", tt.key).Return(tt.thumbnail).Maybe()

			// Act
			err := service.HandleMessage(ctx, bucketEvent(tt.eventName, tt.key))

			// Assert
			require.NoError(t, err)
			renderer.AssertNotCalled(t, "RenderThumbnail", mock.Anything, mock.Anything)
		})
	}
}

func TestThumbnailService_HandleMessage_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("error - malformed payload", func(t *testing.T) {
		// Arrange
		service := thumbnail.NewThumbnailService(thumbnail.NewMockRenderer(), metrics.NopRecorder{}, folder, discardLogger)

		// Act
		err := service.HandleMessage(ctx, []byte("not json"))

		// Assert
		assert.ErrorIs(t, err, domain.ErrMalformedEvent)
	})

	t.Run("error - no records", func(t *testing.T) {
		// Arrange
		service := thumbnail.NewThumbnailService(thumbnail.NewMockRenderer(), metrics.NopRecorder{}, folder, discardLogger)

		// Act
		err := service.HandleMessage(ctx, []byte(`{"Records": []}`))

		// Assert
		assert.ErrorIs(t, err, domain.ErrMalformedEvent)
	})

	t.Run("error - render failure is counted", func(t *testing.T) {
		// Arrange
		cause := errors.New("unknown format")
		renderer := thumbnail.NewMockRenderer()
		recorder := metrics.NewMockRecorder()
		service := thumbnail.NewThumbnailService(renderer, recorder, folder, discardLogger)
		key := "escoffier-event/image/2.png"
		renderer.On("IsThumbnailKey", key).Return(false)
		renderer.On("RenderThumbnail", ctx, key).Return("", cause)
		recorder.On("ThumbnailRendered", false).Return()

		// Act
		err := service.HandleMessage(ctx, bucketEvent("s3:ObjectCreated:CompleteMultipartUpload", key))

		// Assert
		assert.ErrorIs(t, err, cause)
		recorder.AssertExpectations(t)
	})
}
