package domain

import (
	"slices"
	"strings"
	"time"
)

// MediaKind represents the resource kind of an asset
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// ParseMediaKind parses an image|video value
func ParseMediaKind(value string) (MediaKind, error) {
	switch MediaKind(strings.ToLower(strings.TrimSpace(value))) {
	case MediaKindImage:
		return MediaKindImage, nil
	case MediaKindVideo:
		return MediaKindVideo, nil
	default:
		return "", ErrInvalidMediaKind
	}
}

// ImageFormats are the extensions the provider stores as images
var ImageFormats = []string{"jpg", "jpeg", "png", "gif", "webp", "heic", "heif", "avif", "bmp", "tiff"}

// VideoFormats are the extensions the provider stores as videos
var VideoFormats = []string{"mp4", "mov", "avi", "webm", "mkv", "flv", "wmv", "m4v", "ogv", "3gp"}

// UploadFormats are the extensions accepted from attendees, per kind
var UploadFormats = map[MediaKind][]string{
	MediaKindImage: {"jpg", "jpeg", "png", "gif", "webp"},
	MediaKindVideo: {"mp4", "mov", "avi", "webm", "mkv"},
}

// ContradictsKind reports whether format belongs to the other kind's formats
func ContradictsKind(kind MediaKind, format string) bool {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	switch kind {
	case MediaKindImage:
		return slices.Contains(VideoFormats, format)
	case MediaKindVideo:
		return slices.Contains(ImageFormats, format)
	default:
		return true
	}
}

// MediaAsset represents an asset held by the provider
type MediaAsset struct {
	PublicID    string
	Kind        MediaKind
	Format      string
	SecureURL   string
	GridURL     string
	FullURL     string
	PosterURL   string
	PlaybackURL string
	CreatedAt   time.Time
	Width       int
	Height      int
	Bytes       int64
}

// ListOutcome tags why a page holds what it holds
type ListOutcome string

const (
	OutcomeOK             ListOutcome = "ok"
	OutcomeEmpty          ListOutcome = "empty"
	OutcomeUpstreamFailed ListOutcome = "upstream_failed"
)

// Page is a page of assets, newest first
type Page struct {
	Assets     []MediaAsset
	NextCursor string
	HasMore    bool
	Outcome    ListOutcome
}

// CombinedListing holds both kinds of the legacy listing
type CombinedListing struct {
	Images []MediaAsset
	Videos []MediaAsset
	// UpstreamFailed is set when at least one kind was swallowed into an empty list
	UpstreamFailed bool
}

// SearchQuery is a provider search by folder and kind
type SearchQuery struct {
	Folder     string
	Kind       MediaKind
	MaxResults int
	Cursor     string
	Delivery   DeliveryOptions
}

// SearchResult is the raw result of a provider search
type SearchResult struct {
	Assets     []MediaAsset
	NextCursor string
}

// DeliveryOptions selects which derived URLs a provider must build
type DeliveryOptions struct {
	FullSize bool
}
