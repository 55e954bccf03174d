package port

import "context"

// ThumbnailRenderer is an interface to define thumbnail generation in storage
type ThumbnailRenderer interface {
	// RenderThumbnail renders the grid thumbnail of an object and returns the thumbnail key
	RenderThumbnail(ctx context.Context, objectKey string) (string, error)
	IsThumbnailKey(objectKey string) bool
}
