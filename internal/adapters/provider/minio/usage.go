package minio

import (
	"context"
	"fmt"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/minio/minio-go/v7"
)

// Usage sums the objects under the gallery folder. Storage is the only counter a bucket can report.
func (a *Adapter) Usage(ctx context.Context) (domain.UsageCounters, error) {
	counters := domain.UsageCounters{
		Plan:        "self-hosted",
		LastUpdated: a.now().UTC().Format("2006-01-02"),
		Storage:     domain.Counter{Limit: float64(a.config.StorageLimit)},
	}

	for object := range a.client.ListObjects(ctx, a.config.BucketName, minio.ListObjectsOptions{Prefix: a.folder + "/", Recursive: true}) {
		if object.Err != nil {
			return domain.UsageCounters{}, fmt.Errorf("%w: list objects: %w", domain.ErrUpstream, object.Err)
		}
		counters.Storage.Used += float64(object.Size)
		if a.IsThumbnailKey(object.Key) {
			counters.DerivedResources++
		} else {
			counters.Resources++
		}
	}

	return counters, nil
}
