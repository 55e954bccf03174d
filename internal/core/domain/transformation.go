package domain

// Delivery transformations applied when deriving display URLs
const (
	// TransformationImageGrid is a 400x400 smart-cropped square for the grid
	TransformationImageGrid = "c_fill,g_auto,h_400,w_400,q_auto,f_auto"
	// TransformationImageFull caps the full size image width
	TransformationImageFull = "c_limit,w_1080,q_auto,f_auto"
	// TransformationVideoPoster is the 400x400 smart-cropped poster frame, delivered as JPEG
	TransformationVideoPoster = "c_fill,g_auto,h_400,w_400,q_auto"
	// TransformationVideoPlayback caps playback at 720p with reduced quality
	TransformationVideoPlayback = "c_limit,w_720,q_auto:low,f_auto"
	// TransformationVideoUpload is the incoming preset bounding video storage
	TransformationVideoUpload = "q_auto:low"
)

// PosterFormat is the poster frame extension
const PosterFormat = "jpg"

// ThumbnailSize is the edge of the square grid thumbnail, in pixels
const ThumbnailSize = 400
