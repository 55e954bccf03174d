package dto

import (
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

// Asset is the JSON form of a media asset.
// For images secure_url is the grid rendition, for videos it is the playback rendition.
type Asset struct {
	PublicID     string    `json:"public_id"`
	Format       string    `json:"format"`
	ResourceType string    `json:"resource_type"`
	SecureURL    string    `json:"secure_url"`
	CreatedAt    time.Time `json:"created_at"`
	Width        int       `json:"width,omitempty"`
	Height       int       `json:"height,omitempty"`
	Bytes        int64     `json:"bytes,omitempty"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	FullURL      string    `json:"full_url,omitempty"`
}

// NewAsset maps a domain asset to its JSON form
func NewAsset(asset domain.MediaAsset) Asset {
	resp := Asset{
		PublicID:     asset.PublicID,
		Format:       asset.Format,
		ResourceType: string(asset.Kind),
		SecureURL:    asset.SecureURL,
		CreatedAt:    asset.CreatedAt,
		Width:        asset.Width,
		Height:       asset.Height,
		Bytes:        asset.Bytes,
		FullURL:      asset.FullURL,
	}

	switch asset.Kind {
	case domain.MediaKindImage:
		if asset.GridURL != "" {
			resp.SecureURL = asset.GridURL
		}
	case domain.MediaKindVideo:
		if asset.PlaybackURL != "" {
			resp.SecureURL = asset.PlaybackURL
		}
		resp.ThumbnailURL = asset.PosterURL
	}

	return resp
}

// NewAssets maps assets, never returning nil so that an empty page encodes as []
func NewAssets(assets []domain.MediaAsset) []Asset {
	resp := make([]Asset, 0, len(assets))
	for _, asset := range assets {
		resp = append(resp, NewAsset(asset))
	}
	return resp
}

// UploadedAsset is the JSON form of an upload result
type UploadedAsset struct {
	Asset
	OriginalFilename string `json:"original_filename"`
}

// NewUploadedAsset maps an upload result. The original delivery URL is kept.
func NewUploadedAsset(result domain.UploadResult) UploadedAsset {
	asset := NewAsset(result.Asset)
	asset.SecureURL = result.Asset.SecureURL
	asset.Bytes = result.Bytes
	return UploadedAsset{Asset: asset, OriginalFilename: result.OriginalFilename}
}

// NewUploadedAssets maps several upload results
func NewUploadedAssets(results []domain.UploadResult) []UploadedAsset {
	resp := make([]UploadedAsset, 0, len(results))
	for _, result := range results {
		resp = append(resp, NewUploadedAsset(result))
	}
	return resp
}
