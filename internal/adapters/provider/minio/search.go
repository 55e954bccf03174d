package minio

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/minio/minio-go/v7"
)

// Search lists one page of a folder and kind. The cursor is the last key of the previous page.
func (a *Adapter) Search(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error) {
	if err := a.CheckConfigured(); err != nil {
		return domain.SearchResult{}, err
	}

	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	objects := a.client.ListObjects(listCtx, a.config.BucketName, minio.ListObjectsOptions{
		Prefix:     kindPrefix(query.Folder, query.Kind),
		Recursive:  true,
		StartAfter: query.Cursor,
	})

	// one extra object tells whether another page exists
	found := make([]minio.ObjectInfo, 0, query.MaxResults+1)
	for object := range objects {
		if object.Err != nil {
			return domain.SearchResult{}, fmt.Errorf("%w: list objects: %w", domain.ErrUpstream, object.Err)
		}
		found = append(found, object)
		if len(found) > query.MaxResults {
			break
		}
	}

	var nextCursor string
	if len(found) > query.MaxResults {
		found = found[:query.MaxResults]
		nextCursor = found[len(found)-1].Key
	}

	assets := make([]domain.MediaAsset, 0, len(found))
	for _, object := range found {
		asset, err := a.toMediaAsset(ctx, object, query.Kind, query.Delivery)
		if err != nil {
			return domain.SearchResult{}, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
		}
		assets = append(assets, asset)
	}

	return domain.SearchResult{Assets: assets, NextCursor: nextCursor}, nil
}

func (a *Adapter) toMediaAsset(ctx context.Context, object minio.ObjectInfo, kind domain.MediaKind, delivery domain.DeliveryOptions) (domain.MediaAsset, error) {
	original, err := a.objectURL(ctx, object.Key)
	if err != nil {
		return domain.MediaAsset{}, err
	}

	asset := domain.MediaAsset{
		PublicID:  object.Key,
		Kind:      kind,
		Format:    strings.TrimPrefix(strings.ToLower(path.Ext(object.Key)), "."),
		SecureURL: original,
		CreatedAt: object.LastModified,
		Bytes:     object.Size,
	}

	switch kind {
	case domain.MediaKindImage:
		if asset.GridURL, err = a.objectURL(ctx, thumbnailKey(object.Key)); err != nil {
			return domain.MediaAsset{}, err
		}
		if delivery.FullSize {
			asset.FullURL = original
		}
	case domain.MediaKindVideo:
		asset.PlaybackURL = original
	}

	return asset, nil
}
