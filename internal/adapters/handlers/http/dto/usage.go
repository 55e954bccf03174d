package dto

import (
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

// Metric is a quota metric
type Metric struct {
	Used      float64 `json:"used"`
	Limit     float64 `json:"limit"`
	Percent   float64 `json:"percent"`
	Remaining float64 `json:"remaining"`
}

// ByteMetric is a quota metric in bytes, with GB renderings
type ByteMetric struct {
	Metric
	UsedGB      string `json:"usedGB"`
	LimitGB     string `json:"limitGB"`
	RemainingGB string `json:"remainingGB"`
}

// Usage is the JSON form of a usage snapshot
type Usage struct {
	Plan             string     `json:"plan,omitempty"`
	LastUpdated      string     `json:"lastUpdated,omitempty"`
	Credits          Metric     `json:"credits"`
	Transformations  Metric     `json:"transformations"`
	Bandwidth        ByteMetric `json:"bandwidth"`
	Storage          ByteMetric `json:"storage"`
	Resources        int64      `json:"resources"`
	DerivedResources int64      `json:"derivedResources"`
	ResetDate        *time.Time `json:"resetDate"`
	FetchedAt        time.Time  `json:"fetchedAt"`
}

// NewUsage maps a usage snapshot
func NewUsage(snapshot domain.UsageSnapshot) Usage {
	return Usage{
		Plan:             snapshot.Plan,
		LastUpdated:      snapshot.LastUpdated,
		Credits:          newMetric(snapshot.Credits),
		Transformations:  newMetric(snapshot.Transformations),
		Bandwidth:        newByteMetric(snapshot.Bandwidth),
		Storage:          newByteMetric(snapshot.Storage),
		Resources:        snapshot.Resources,
		DerivedResources: snapshot.DerivedResources,
		ResetDate:        snapshot.ResetDate,
		FetchedAt:        snapshot.FetchedAt,
	}
}

func newMetric(m domain.MetricUsage) Metric {
	return Metric{Used: m.Used, Limit: m.Limit, Percent: m.Percent, Remaining: m.Remaining}
}

func newByteMetric(m domain.ByteUsage) ByteMetric {
	return ByteMetric{
		Metric:      newMetric(m.MetricUsage),
		UsedGB:      m.UsedGB,
		LimitGB:     m.LimitGB,
		RemainingGB: m.RemainingGB,
	}
}
