package cloudinary

import (
	"context"
	"fmt"
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
)

// Usage reads the account counters from the admin usage API
func (a *Adapter) Usage(ctx context.Context) (domain.UsageCounters, error) {
	res, err := a.cld.Admin.Usage(ctx, admin.UsageParams{})
	if err != nil {
		return domain.UsageCounters{}, fmt.Errorf("%w: usage request failed: %w", domain.ErrUpstream, err)
	}
	if res == nil {
		return domain.UsageCounters{}, domain.ErrNoUsageData
	}
	if res.Error.Message != "" {
		return domain.UsageCounters{}, fmt.Errorf("%w: %s", domain.ErrUpstream, res.Error.Message)
	}

	raw := rawResponse(res.Response)
	if len(raw) == 0 {
		return domain.UsageCounters{}, domain.ErrNoUsageData
	}

	return domain.UsageCounters{
		Plan:        res.Plan,
		LastUpdated: res.LastUpdated,
		Credits: domain.Counter{
			Used:  res.Credits.Usage,
			Limit: nestedFloat(raw, "credits", "limit"),
		},
		Transformations: domain.Counter{
			Used:  float64(res.Transformations.Usage),
			Limit: float64(res.Transformations.Limit),
		},
		Bandwidth: domain.Counter{
			Used:  float64(res.Bandwidth.Usage),
			Limit: float64(res.Bandwidth.Limit),
		},
		Storage: domain.Counter{
			Used:  float64(res.Storage.Usage),
			Limit: float64(res.Storage.Limit),
		},
		Resources:        int64(res.Resources),
		DerivedResources: int64(res.DerivedResources),
		ResetAt:          resetAt(raw),
	}, nil
}

// resetAt reads the quota reset date some plans report, nil when absent or unreadable
func resetAt(raw map[string]interface{}) *time.Time {
	switch value := raw["reset_at"].(type) {
	case string:
		for _, layout := range []string{time.RFC3339, time.DateOnly} {
			if t, err := time.Parse(layout, value); err == nil {
				return &t
			}
		}
	case float64:
		t := time.Unix(int64(value), 0).UTC()
		return &t
	}
	return nil
}

// rawResponse returns the decoded JSON body kept by the SDK next to the typed result
func rawResponse(response interface{}) map[string]interface{} {
	switch body := response.(type) {
	case map[string]interface{}:
		return body
	case *map[string]interface{}:
		if body != nil {
			return *body
		}
	}
	return nil
}

func nestedFloat(raw map[string]interface{}, section, key string) float64 {
	values, ok := raw[section].(map[string]interface{})
	if !ok {
		return 0
	}
	value, _ := values[key].(float64)
	return value
}
