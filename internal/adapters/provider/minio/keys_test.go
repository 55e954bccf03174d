package minio

import (
	"strings"
	"testing"
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewObjectKey_SortsNewestFirst(t *testing.T) {
	// Arrange
	clock := time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC)
	adapter := &Adapter{now: func() time.Time { return clock }}

	// Act
	older := adapter.newObjectKey("escoffier-event", domain.MediaKindImage, "Dish.JPG")
	clock = clock.Add(time.Second)
	newer := adapter.newObjectKey("escoffier-event", domain.MediaKindImage, "dish.jpg")

	// Assert
	assert.True(t, strings.HasPrefix(older, "escoffier-event/image/"))
	assert.True(t, strings.HasSuffix(older, ".jpg"))
	assert.Less(t, newer, older)
}

func TestThumbnailKey(t *testing.T) {
	// Arrange
	adapter := &Adapter{}
	objectKey := "escoffier-event/image/0001_abc.png"

	// Act
	thumbKey := thumbnailKey(objectKey)

	// Assert
	assert.Equal(t, "escoffier-event/_thumbs/image/0001_abc.jpg", thumbKey)
	assert.True(t, adapter.IsThumbnailKey(thumbKey))
	assert.False(t, adapter.IsThumbnailKey(objectKey))
}
