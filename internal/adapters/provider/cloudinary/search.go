package cloudinary

import (
	"context"
	"fmt"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/admin/search"
	"github.com/cloudinary/cloudinary-go/v2/asset"
)

// Search lists the assets of a folder and kind, newest first
func (a *Adapter) Search(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error) {
	if err := a.CheckConfigured(); err != nil {
		return domain.SearchResult{}, err
	}

	res, err := a.cld.Admin.Search(ctx, search.Query{
		Expression: fmt.Sprintf("asset_folder:%s AND resource_type:%s", query.Folder, query.Kind),
		SortBy:     []search.SortByField{{"created_at": search.Descending}},
		MaxResults: query.MaxResults,
		NextCursor: query.Cursor,
	})
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("%w: search failed: %w", domain.ErrUpstream, err)
	}
	if res.Error.Message != "" {
		return domain.SearchResult{}, fmt.Errorf("%w: search failed: %s", domain.ErrUpstream, res.Error.Message)
	}

	assets := make([]domain.MediaAsset, 0, len(res.Assets))
	for _, found := range res.Assets {
		mediaAsset, err := a.toMediaAsset(found, query.Delivery)
		if err != nil {
			a.logger.Warn("skipping asset without delivery url", "public_id", found.PublicID, "error", err)
			continue
		}
		assets = append(assets, mediaAsset)
	}

	return domain.SearchResult{Assets: assets, NextCursor: res.NextCursor}, nil
}

func (a *Adapter) toMediaAsset(found admin.SearchAsset, delivery domain.DeliveryOptions) (domain.MediaAsset, error) {
	mediaAsset := domain.MediaAsset{
		PublicID:  found.PublicID,
		Kind:      domain.MediaKind(found.ResourceType),
		Format:    found.Format,
		SecureURL: found.SecureURL,
		CreatedAt: found.CreatedAt,
		Width:     found.Width,
		Height:    found.Height,
		Bytes:     int64(found.Bytes),
	}

	var err error
	switch mediaAsset.Kind {
	case domain.MediaKindImage:
		if mediaAsset.GridURL, err = a.deliveryURL(domain.MediaKindImage, found.PublicID, found.Version, domain.TransformationImageGrid); err != nil {
			return domain.MediaAsset{}, err
		}
		if delivery.FullSize {
			if mediaAsset.FullURL, err = a.deliveryURL(domain.MediaKindImage, found.PublicID, found.Version, domain.TransformationImageFull); err != nil {
				return domain.MediaAsset{}, err
			}
		}
	case domain.MediaKindVideo:
		poster := found.PublicID + "." + domain.PosterFormat
		if mediaAsset.PosterURL, err = a.deliveryURL(domain.MediaKindVideo, poster, found.Version, domain.TransformationVideoPoster); err != nil {
			return domain.MediaAsset{}, err
		}
		if mediaAsset.PlaybackURL, err = a.deliveryURL(domain.MediaKindVideo, found.PublicID, found.Version, domain.TransformationVideoPlayback); err != nil {
			return domain.MediaAsset{}, err
		}
	}

	return mediaAsset, nil
}

// deliveryURL builds a transformed delivery URL. A poster frame is requested by suffixing the video public id with an image extension.
func (a *Adapter) deliveryURL(kind domain.MediaKind, publicID string, version int, transformation string) (string, error) {
	var (
		deliverable *asset.Asset
		err         error
	)
	if kind == domain.MediaKindVideo {
		deliverable, err = a.cld.Video(publicID)
	} else {
		deliverable, err = a.cld.Image(publicID)
	}
	if err != nil {
		return "", err
	}

	deliverable.Transformation = transformation
	deliverable.Version = version
	return deliverable.String()
}
